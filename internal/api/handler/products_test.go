package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/rainforestclient"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/cataloging/mocks"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/apiErrors"
)

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setup          func(mockCatalog *mocks.MockCatalogService)
		expectedStatus int
		validate       func(t *testing.T, body map[string]any)
	}{
		{
			name:           "Sem asin retorna 400",
			target:         "/amazon",
			setup:          func(mockCatalog *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrMissingRequiredParam, body["code"])
			},
		},
		{
			name:   "Credencial ausente retorna 500 nomeando a credencial",
			target: "/amazon?asin=B07XYZ1234",
			setup: func(mockCatalog *mocks.MockCatalogService) {
				mockCatalog.EXPECT().
					GetProduct("B07XYZ1234").
					Return(nil, rainforestclient.ErrMissingAPIKey)
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, apiErrors.ErrMissingCredential, body["code"])
				assert.Contains(t, body["message"], "RAINFOREST_API_KEY")
			},
		},
		{
			name:   "Produto sem buybox responde com preço N/A",
			target: "/amazon?asin=B07XYZ1234",
			setup: func(mockCatalog *mocks.MockCatalogService) {
				mockCatalog.EXPECT().
					GetProduct("B07XYZ1234").
					Return(&domain.ProductResponse{
						Status: "success",
						ProductSummary: &domain.ProductSummary{
							ASIN:         "B07XYZ1234",
							Title:        "Produto",
							Price:        "N/A",
							Rating:       4.1,
							TotalReviews: 87,
							Images:       []string{},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "success", body["status"])
				assert.Equal(t, "N/A", body["price"])
				assert.Equal(t, "B07XYZ1234", body["asin"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCatalog := mocks.NewMockCatalogService(ctrl)
			tt.setup(mockCatalog)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			GetProduct(mockCatalog).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			tt.validate(t, body)
		})
	}
}
