package adlibraryclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
)

func newTestClient(serverURL, token string) *AdLibraryClient {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.AccessToken = token
	cfg.Meta.Country = "IN"
	cfg.Meta.PageSize = 25

	return NewClient(cfg).(*AdLibraryClient)
}

func TestSearchAdsArchive_MissingToken(t *testing.T) {
	client := newTestClient("http://localhost", "")

	_, err := client.SearchAdsArchive("Beardo")

	// Credencial ausente é erro de configuração e não dispara requisição
	assert.ErrorIs(t, err, ErrMissingAccessToken)
}

func TestSearchAdsArchive_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ads_archive", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "Beardo", query.Get("search_terms"))
		assert.Equal(t, `["IN"]`, query.Get("ad_reached_countries"))
		assert.Equal(t, "ACTIVE", query.Get("ad_active_status"))
		assert.Equal(t, "25", query.Get("limit"))
		assert.Equal(t, "test-token", query.Get("access_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"1","page_name":"Beardo","ad_delivery_start_time":"2024-01-15T00:00:00+0000","ad_creative_bodies":["Compre agora"]}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")

	records, err := client.SearchAdsArchive("Beardo")
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "Beardo", records[0].PageName)
	assert.Equal(t, []string{"Compre agora"}, records[0].AdCreativeBodies)
}

func TestSearchAdsArchive_GraphAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"fbtrace_id":"Axxxx"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "expired-token")

	_, err := client.SearchAdsArchive("Beardo")

	// A mensagem original da Graph API é repassada ao chamador
	assert.EqualError(t, err, "Invalid OAuth access token.")
}

func TestSearchAdsArchive_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("Bad Gateway"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-token")

	_, err := client.SearchAdsArchive("Beardo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
