package tracking

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
	"github.com/mosaicgrowth/competitor-intel-api/internal/registry"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/utils"
)

// Quantidade de anúncios no top de long running do dashboard
const topLongRunningSize = 5

// Service implementa a interface Tracker sobre o integrador da Ad Library
type Service struct {
	cfg          *config.Config
	adService    adlibrary.AdSearcher
	requestDelay time.Duration
}

// NewService cria uma nova instância do serviço de tracking
func NewService(cfg *config.Config, adService adlibrary.AdSearcher) Tracker {
	return &Service{
		cfg:          cfg,
		adService:    adService,
		requestDelay: time.Duration(cfg.Meta.RequestDelayMS) * time.Millisecond,
	}
}

// CompetitorAds busca os anúncios ativos de um único concorrente
func (s *Service) CompetitorAds(competitor string) (*domain.CompetitorAdsResponse, error) {
	ads, err := s.adService.SearchAdsByCompetitor(competitor)
	if err != nil {
		return nil, err
	}

	return &domain.CompetitorAdsResponse{
		Status:     "success",
		Competitor: competitor,
		TotalAds:   len(ads),
		Ads:        ads,
	}, nil
}

// BrandAds agrega os anúncios de todos os concorrentes de uma marca. Falhas
// individuais entram no mapa de erros e não abortam os demais concorrentes.
func (s *Service) BrandAds(brand string) (*domain.BrandAdsResponse, error) {
	competitors, results, fetchErrors, allAds, err := s.fetchBrand(brand)
	if err != nil {
		return nil, err
	}

	response := &domain.BrandAdsResponse{
		Status:             "success",
		Brand:              brand,
		CompetitorsTracked: len(competitors),
		TotalAdsFetched:    len(allAds),
		Results:            results,
	}

	if len(fetchErrors) > 0 {
		response.Errors = fetchErrors
	}

	return response, nil
}

// Dashboard agrega os anúncios da marca e deriva o resumo estatístico.
// Concorrentes com falha são apenas logados e ficam fora dos agregados.
func (s *Service) Dashboard(brand string) (*domain.DashboardResponse, error) {
	competitors, _, fetchErrors, allAds, err := s.fetchBrand(brand)
	if err != nil {
		return nil, err
	}

	for competitor, message := range fetchErrors {
		logrus.WithFields(logrus.Fields{
			"brand":      brand,
			"competitor": competitor,
			"error":      message,
		}).Error("dashboard: competitor fetch failed, omitting from aggregates")
	}

	longRunning := 0
	knownDays := make([]int, 0, len(allAds))
	for _, ad := range allAds {
		if ad.IsLongRunning {
			longRunning++
		}
		if ad.DaysRunning != nil {
			knownDays = append(knownDays, *ad.DaysRunning)
		}
	}

	return &domain.DashboardResponse{
		Status: "success",
		Brand:  brand,
		Summary: &domain.DashboardSummary{
			TotalAds:           len(allAds),
			CompetitorsTracked: len(competitors),
			LongRunningAds:     longRunning,
			AvgDaysRunning:     utils.MeanToNearestInt(knownDays),
		},
		TopLongRunning: topByDaysRunning(allAds, topLongRunningSize),
		AllAds:         allAds,
	}, nil
}

// fetchBrand executa o fan-out sequencial sobre os concorrentes da marca.
// A pausa entre chamadas é intencional para não estourar o rate limit da
// Ad Library; não paralelizar.
func (s *Service) fetchBrand(brand string) (
	competitors []string,
	results map[string]*domain.CompetitorAds,
	fetchErrors map[string]string,
	allAds []*domain.Ad,
	err error,
) {
	competitors, ok := registry.Competitors(brand)
	if !ok {
		return nil, nil, nil, nil, NewUnknownBrandError(brand, registry.Brands())
	}

	logrus.WithFields(logrus.Fields{
		"brand":       brand,
		"competitors": len(competitors),
	}).Info("ads: starting sequential fetch for brand")

	results = make(map[string]*domain.CompetitorAds, len(competitors))
	fetchErrors = make(map[string]string)

	for i, competitor := range competitors {
		if i > 0 {
			time.Sleep(s.requestDelay)
		}

		ads, searchErr := s.adService.SearchAdsByCompetitor(competitor)
		if searchErr != nil {
			logrus.WithFields(logrus.Fields{
				"brand":      brand,
				"competitor": competitor,
				"error":      searchErr.Error(),
			}).Warn("ads: competitor fetch failed, continuing with remaining")

			fetchErrors[competitor] = searchErr.Error()
			continue
		}

		longRunning := 0
		for _, ad := range ads {
			if ad.IsLongRunning {
				longRunning++
			}
		}

		results[competitor] = &domain.CompetitorAds{
			TotalAds:       len(ads),
			LongRunningAds: longRunning,
			Ads:            ads,
		}

		allAds = append(allAds, ads...)
	}

	logrus.WithFields(logrus.Fields{
		"brand":     brand,
		"total_ads": len(allAds),
		"failures":  len(fetchErrors),
	}).Info("ads: finished fetch for brand")

	return competitors, results, fetchErrors, allAds, nil
}

// topByDaysRunning ordena por dias de veiculação decrescente, tratando idade
// desconhecida como o menor valor, e trunca no tamanho pedido
func topByDaysRunning(ads []*domain.Ad, size int) []*domain.Ad {
	sorted := make([]*domain.Ad, len(ads))
	copy(sorted, ads)

	days := func(ad *domain.Ad) int {
		if ad.DaysRunning == nil {
			return -1
		}
		return *ad.DaysRunning
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return days(sorted[i]) > days(sorted[j])
	})

	if len(sorted) > size {
		sorted = sorted[:size]
	}

	return sorted
}
