package handler

import (
	"errors"
	"net/http"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/adlibraryclient"
	"github.com/mosaicgrowth/competitor-intel-api/internal/registry"
	"github.com/mosaicgrowth/competitor-intel-api/internal/usecases/tracking"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/apiErrors"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/log"
)

// GetCompetitorAds trata GET /meta?competitor=
func GetCompetitorAds(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		competitor := r.URL.Query().Get("competitor")
		if competitor == "" {
			logger.Warn("ads: missing competitor query param")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredParam, "competitor query param is required", nil)
			return
		}

		logger.WithField("competitor", competitor).Info("ads: fetching ads for competitor")

		response, err := service.CompetitorAds(competitor)
		if err != nil {
			logger.WithFields(log.Fields{
				"competitor": competitor,
				"error":      err.Error(),
			}).Error("ads: failed to fetch competitor ads")

			writeAdsError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("ads: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetBrandAds trata GET /meta/brand?brand=
func GetBrandAds(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		brand := r.URL.Query().Get("brand")
		if brand == "" {
			logger.Warn("ads: missing brand query param")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredParam, "brand query param is required",
				map[string]any{"valid_brands": registry.Brands()})
			return
		}

		logger.WithField("brand", brand).Info("ads: fetching ads for brand")

		response, err := service.BrandAds(brand)
		if err != nil {
			logger.WithFields(log.Fields{
				"brand": brand,
				"error": err.Error(),
			}).Error("ads: failed to fetch brand ads")

			writeAdsError(w, err)
			return
		}

		if len(response.Errors) > 0 {
			logger.WithFields(log.Fields{
				"brand":    brand,
				"failures": len(response.Errors),
			}).Warn("ads: brand fetch finished with partial failures")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("ads: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writeAdsError traduz os erros do fluxo de anúncios para o contrato HTTP:
// marca inválida vira 400 com as chaves válidas, credencial ausente e falha
// de upstream viram 500 com a mensagem original.
func writeAdsError(w http.ResponseWriter, err error) {
	var unknownBrandErr *tracking.UnknownBrandError
	if errors.As(err, &unknownBrandErr) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownBrand, err.Error(),
			map[string]any{"valid_brands": unknownBrandErr.ValidBrands})
		return
	}

	if errors.Is(err, adlibraryclient.ErrMissingAccessToken) {
		apiErrors.WriteError(w, apiErrors.ErrMissingCredential, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrAdLibraryUpstream, err.Error(), nil)
}
