package handler

import (
	"errors"
	"net/http"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/rainforestclient"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/cataloging"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/apiErrors"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/log"
)

// GetProduct trata GET /amazon?asin=
func GetProduct(service cataloging.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		asin := r.URL.Query().Get("asin")
		if asin == "" {
			logger.Warn("products: missing asin query param")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredParam, "asin query param is required", nil)
			return
		}

		logger.WithField("asin", asin).Info("products: fetching product summary")

		response, err := service.GetProduct(asin)
		if err != nil {
			logger.WithFields(log.Fields{
				"asin":  asin,
				"error": err.Error(),
			}).Error("products: failed to fetch product")

			if errors.Is(err, rainforestclient.ErrMissingAPIKey) {
				apiErrors.WriteError(w, apiErrors.ErrMissingCredential, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrRainforestUpstream, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("products: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
