package tracking

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/mocks"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
)

func newTestService(adService *mocks.MockAdSearcher, delayMS int) *Service {
	cfg := &config.Config{}
	cfg.Meta.RequestDelayMS = delayMS

	return NewService(cfg, adService).(*Service)
}

func adFixture(id string, days *int) *domain.Ad {
	ad := &domain.Ad{
		ID:          id,
		AdCopy:      "copy",
		DaysRunning: days,
	}
	if days != nil {
		ad.IsLongRunning = *days > domain.LongRunningThresholdDays
	}
	return ad
}

func intPtr(v int) *int {
	return &v
}

func TestBrandAds_UnknownBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockAdSearcher(ctrl), 0)

	// Nenhuma chamada de upstream pode acontecer para marca inválida
	_, err := service.BrandAds("unknown")

	var unknownErr *UnknownBrandError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "unknown", unknownErr.Brand)
	assert.Equal(t, []string{"manMatters", "beBodywise", "littleJoys"}, unknownErr.ValidBrands)
}

func TestBrandAds_SequentialFanOutWithPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	// manMatters tem exatamente 7 concorrentes; as chamadas devem acontecer
	// uma a uma, na ordem do registro
	competitors := []string{
		"Beardo", "The Man Company", "Ustraa", "Bombay Shaving Company",
		"Mamaearth", "Traya", "ForMen",
	}

	calls := make([]any, 0, len(competitors))
	for _, competitor := range competitors {
		if competitor == "Ustraa" {
			calls = append(calls, mockAdSearcher.EXPECT().
				SearchAdsByCompetitor(competitor).
				Return(nil, errors.New("Application request limit reached")))
			continue
		}

		calls = append(calls, mockAdSearcher.EXPECT().
			SearchAdsByCompetitor(competitor).
			Return([]*domain.Ad{
				adFixture(competitor+"-1", intPtr(40)),
				adFixture(competitor+"-2", nil),
			}, nil))
	}
	gomock.InOrder(calls...)

	response, err := service.BrandAds("manMatters")
	assert.NoError(t, err)

	// A falha de um concorrente não derruba a agregação
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, 7, response.CompetitorsTracked)
	assert.Equal(t, 12, response.TotalAdsFetched)
	assert.Len(t, response.Results, 6)
	assert.Len(t, response.Errors, 1)
	assert.Equal(t, "Application request limit reached", response.Errors["Ustraa"])
	assert.NotContains(t, response.Results, "Ustraa")

	beardo := response.Results["Beardo"]
	assert.Equal(t, 2, beardo.TotalAds)
	assert.Equal(t, 1, beardo.LongRunningAds)
}

func TestBrandAds_PacingBetweenCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 20)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor(gomock.Any()).
		Return([]*domain.Ad{}, nil).
		Times(4)

	start := time.Now()
	// littleJoys tem 4 concorrentes: 3 pausas de 20ms entre as chamadas
	_, err := service.BrandAds("littleJoys")
	elapsed := time.Since(start)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Slurrp Farm").
		Return([]*domain.Ad{
			adFixture("a1", intPtr(90)),
			adFixture("a2", intPtr(10)),
		}, nil)
	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Happa Foods").
		Return([]*domain.Ad{
			adFixture("b1", intPtr(45)),
			adFixture("b2", nil),
		}, nil)
	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Timios").
		Return([]*domain.Ad{
			adFixture("c1", intPtr(60)),
			adFixture("c2", intPtr(31)),
			adFixture("c3", intPtr(5)),
		}, nil)
	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Early Foods").
		Return(nil, errors.New("timeout"))

	response, err := service.Dashboard("littleJoys")
	assert.NoError(t, err)

	// Concorrente com falha fica fora dos agregados, sem campo de erros
	assert.Equal(t, 7, response.Summary.TotalAds)
	assert.Equal(t, 4, response.Summary.CompetitorsTracked)
	assert.Equal(t, 4, response.Summary.LongRunningAds)
	// Média dos dias conhecidos: (90+10+45+60+31+5)/6 = 40.17 -> 40
	assert.Equal(t, 40, response.Summary.AvgDaysRunning)

	// Top 5 em ordem decrescente, idade desconhecida por último
	assert.Len(t, response.TopLongRunning, 5)
	assert.Equal(t, "a1", response.TopLongRunning[0].ID)
	assert.Equal(t, "c1", response.TopLongRunning[1].ID)
	assert.Equal(t, "b1", response.TopLongRunning[2].ID)
	assert.Equal(t, "c2", response.TopLongRunning[3].ID)
	assert.Equal(t, "a2", response.TopLongRunning[4].ID)

	assert.Len(t, response.AllAds, 7)
}

func TestDashboard_EmptyResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor(gomock.Any()).
		Return([]*domain.Ad{}, nil).
		Times(4)

	response, err := service.Dashboard("littleJoys")
	assert.NoError(t, err)

	// Sem anúncios a média é zero, não NaN nem erro
	assert.Equal(t, 0, response.Summary.TotalAds)
	assert.Equal(t, 0, response.Summary.AvgDaysRunning)
	assert.Empty(t, response.TopLongRunning)
}

func TestDashboard_AllAgesUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor(gomock.Any()).
		Return([]*domain.Ad{adFixture("x", nil)}, nil).
		Times(4)

	response, err := service.Dashboard("littleJoys")
	assert.NoError(t, err)

	assert.Equal(t, 4, response.Summary.TotalAds)
	assert.Equal(t, 0, response.Summary.LongRunningAds)
	assert.Equal(t, 0, response.Summary.AvgDaysRunning)
}

func TestCompetitorAds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Beardo").
		Return([]*domain.Ad{adFixture("a1", intPtr(12))}, nil)

	response, err := service.CompetitorAds("Beardo")
	assert.NoError(t, err)

	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "Beardo", response.Competitor)
	assert.Equal(t, 1, response.TotalAds)
}

func TestCompetitorAds_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdSearcher := mocks.NewMockAdSearcher(ctrl)
	service := newTestService(mockAdSearcher, 0)

	mockAdSearcher.EXPECT().
		SearchAdsByCompetitor("Beardo").
		Return(nil, errors.New("Invalid OAuth access token"))

	_, err := service.CompetitorAds("Beardo")
	assert.EqualError(t, err, "Invalid OAuth access token")
}
