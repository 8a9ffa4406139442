package adlibraryclient

import (
	"net/http"
	"time"

	adlibrarydomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
)

type Client interface {
	SearchAdsArchive(searchTerms string) ([]adlibrarydomain.ArchivedAd, error)
}

type AdLibraryClient struct {
	httpClient *http.Client
	Cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AdLibraryClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Cfg: cfg,
	}
}
