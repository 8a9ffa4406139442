package tracking

import (
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
)

// Tracker define a interface de agregação de anúncios de concorrentes
type Tracker interface {
	// CompetitorAds busca os anúncios ativos de um único concorrente
	CompetitorAds(competitor string) (*domain.CompetitorAdsResponse, error)

	// BrandAds agrega os anúncios de todos os concorrentes de uma marca,
	// capturando falhas por concorrente sem abortar o restante
	BrandAds(brand string) (*domain.BrandAdsResponse, error)

	// Dashboard agrega os anúncios da marca e deriva o resumo estatístico
	// (contagens, média de dias e top 5 de anúncios mais antigos)
	Dashboard(brand string) (*domain.DashboardResponse, error)
}
