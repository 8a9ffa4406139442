package adlibraryclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	adlibrarydomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/domain"
)

// Campos fixos solicitados à Ad Library
const adsArchiveFields = "id,ad_creation_time,ad_delivery_start_time,ad_creative_bodies,page_name,ad_snapshot_url"

// ErrMissingAccessToken indica que a credencial da Ad Library não foi
// configurada no ambiente. É erro de configuração, não de upstream.
var ErrMissingAccessToken = errors.New("META_ACCESS_TOKEN is not configured")

// SearchAdsArchive faz uma busca de página única por anúncios ativos que
// mencionam o termo informado, restrita ao país configurado.
func (c *AdLibraryClient) SearchAdsArchive(searchTerms string) ([]adlibrarydomain.ArchivedAd, error) {
	if c.Cfg.Meta.AccessToken == "" {
		return nil, ErrMissingAccessToken
	}

	params := &url.Values{}
	params.Add("search_terms", searchTerms)
	params.Add("ad_reached_countries", fmt.Sprintf(`["%s"]`, c.Cfg.Meta.Country))
	params.Add("ad_active_status", "ACTIVE")
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageSize))
	params.Add("fields", adsArchiveFields)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/ads_archive?%s", c.Cfg.Meta.URL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar a requisição para a Ad Library")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(err, "erro ao executar a requisição para a Ad Library")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta da Ad Library")
	}

	if resp.StatusCode != http.StatusOK {
		// A Graph API devolve o motivo dentro de um envelope de erro; a
		// mensagem original é repassada para o chamador
		var apiErr adlibrarydomain.ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			logrus.WithFields(logrus.Fields{
				"status":      resp.Status,
				"fbtrace_id":  apiErr.Error.FBTraceID,
				"error_type":  apiErr.Error.Type,
				"search_term": searchTerms,
			}).Error("Erro retornado pela Ad Library")

			return nil, errors.New(apiErr.Error.Message)
		}

		return nil, errors.Errorf("requisição à Ad Library falhou com status: %s", resp.Status)
	}

	var response adlibrarydomain.ResponseAdsArchive
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar a resposta da Ad Library")
	}

	return response.Data, nil
}
