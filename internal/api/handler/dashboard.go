package handler

import (
	"net/http"

	"github.com/mosaicgrowth/competitor-intel-api/internal/registry"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/tracking"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/apiErrors"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/log"
)

// GetDashboard trata GET /dashboard?brand=
func GetDashboard(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brand := r.URL.Query().Get("brand")
		if brand == "" {
			logger.Warn("dashboard: missing brand query param")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredParam, "brand query param is required",
				map[string]any{"valid_brands": registry.Brands()})
			return
		}

		logger.WithField("brand", brand).Info("dashboard: building dashboard for brand")

		response, err := service.Dashboard(brand)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": brand,
				"error": err.Error(),
			}).Error("dashboard: failed to build dashboard")

			writeAdsError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"brand":     brand,
			"total_ads": response.Summary.TotalAds,
		}).Info("dashboard: successfully built dashboard")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
