package rainforestclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	rainforestdomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/domain"
)

// ErrMissingAPIKey indica que a credencial do provedor de produtos não foi
// configurada no ambiente
var ErrMissingAPIKey = errors.New("RAINFOREST_API_KEY is not configured")

// GetProduct consulta um produto pelo ASIN no marketplace configurado
func (c *RainforestClient) GetProduct(asin string) (*rainforestdomain.Product, error) {
	if c.config.Rainforest.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Construir a URL da requisição
	endpoint, err := url.Parse(c.config.Rainforest.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}

	query := endpoint.Query()
	query.Set("api_key", c.config.Rainforest.APIKey)
	query.Set("type", "product")
	query.Set("amazon_domain", c.config.Rainforest.AmazonDomain)
	query.Set("asin", asin)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response rainforestdomain.ResponseProduct
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	if resp.StatusCode != http.StatusOK || !response.RequestInfo.Success {
		// O provedor descreve o motivo da falha em request_info.message
		if response.RequestInfo.Message != "" {
			logrus.WithFields(logrus.Fields{
				"asin":   asin,
				"status": resp.Status,
			}).Error("Erro retornado pela API de produtos")

			return nil, errors.New(response.RequestInfo.Message)
		}

		return nil, errors.Errorf("requisição de produto falhou com status: %s", resp.Status)
	}

	return &response.Product, nil
}
