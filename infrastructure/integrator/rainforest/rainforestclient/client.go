package rainforestclient

import (
	"net/http"
	"time"

	rainforestdomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/domain"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
)

type Client interface {
	GetProduct(asin string) (*rainforestdomain.Product, error)
}

type RainforestClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RainforestClient{
		httpClient: &http.Client{
			// O provedor renderiza a página do produto sob demanda; respostas
			// frequentemente levam mais de 30s
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}
