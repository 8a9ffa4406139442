package handler

import (
	"net/http"
	"time"

	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/log"
)

// StatusResponse é a resposta de GET /test
type StatusResponse struct {
	Status                  string `json:"status"`
	Message                 string `json:"message"`
	Timestamp               string `json:"timestamp"`
	MetaTokenConfigured     bool   `json:"meta_token_configured"`
	RainforestKeyConfigured bool   `json:"rainforest_key_configured"`
}

// GetStatus expõe o estado do serviço e quais credenciais estão configuradas
func GetStatus(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response := StatusResponse{
			Status:                  "ok",
			Message:                 "Competitor intel API is running",
			Timestamp:               time.Now().UTC().Format(time.RFC3339),
			MetaTokenConfigured:     cfg.HasMetaToken(),
			RainforestKeyConfigured: cfg.HasRainforestKey(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("status: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
