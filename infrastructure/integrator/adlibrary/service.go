package adlibrary

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/adlibraryclient"
	adlibrarydomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/adlibrary/domain"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
	"github.com/mosaicgrowth/competitor-intel-api/pkg/utils"
)

// Texto usado quando o anúncio não tem nenhum corpo de criativo
const fallbackAdCopy = "No ad copy available"

// ErrCompetitorRequired indica chamada sem nome de concorrente
var ErrCompetitorRequired = errors.New("competitor name is required")

// AdSearcher define a interface para buscar anúncios normalizados de um
// concorrente na Ad Library
type AdSearcher interface {
	SearchAdsByCompetitor(competitor string) ([]*domain.Ad, error)
}

type AdLibraryIntegrator struct {
	cfg    *config.Config
	Client adlibraryclient.Client
}

func New(cfg *config.Config, client adlibraryclient.Client) *AdLibraryIntegrator {
	return &AdLibraryIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// SearchAdsByCompetitor busca os anúncios ativos de um concorrente e calcula
// os campos derivados de idade de veiculação
func (s *AdLibraryIntegrator) SearchAdsByCompetitor(competitor string) ([]*domain.Ad, error) {
	if competitor == "" {
		return nil, ErrCompetitorRequired
	}

	records, err := s.Client.SearchAdsArchive(competitor)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"competitor": competitor,
			"error":      err.Error(),
		}).Error("ads: failed to search ads archive")
		return nil, err
	}

	now := time.Now()
	ads := make([]*domain.Ad, 0, len(records))
	for _, record := range records {
		ads = append(ads, FactoryAd(record, now))
	}

	logrus.WithFields(logrus.Fields{
		"competitor": competitor,
		"total_ads":  len(ads),
	}).Debug("ads: successfully fetched ads for competitor")

	return ads, nil
}

// FactoryAd converte um registro cru da Ad Library no anúncio normalizado.
// A data de início considerada é ad_delivery_start_time, com fallback para
// ad_creation_time; sem nenhuma das duas, a idade fica desconhecida.
func FactoryAd(record adlibrarydomain.ArchivedAd, now time.Time) *domain.Ad {
	ad := &domain.Ad{
		ID:          record.ID,
		PageName:    record.PageName,
		AdCopy:      fallbackAdCopy,
		SnapshotURL: record.AdSnapshotURL,
		CreatedTime: record.AdCreationTime,
		StartTime:   record.AdDeliveryStartTime,
	}

	if len(record.AdCreativeBodies) > 0 {
		ad.AdCopy = record.AdCreativeBodies[0]
	}

	startValue := record.AdDeliveryStartTime
	if startValue == "" {
		startValue = record.AdCreationTime
	}

	start, err := utils.ParseAdTime(startValue)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": record.ID,
			"value": startValue,
		}).Warn("ads: could not parse ad start time")
	}

	if start != nil && err == nil {
		days := utils.DaysSince(*start, now)
		ad.DaysRunning = &days
		// Idade desconhecida nunca marca long running; a flag só deriva de
		// DaysRunning quando ele existe
		ad.IsLongRunning = days > domain.LongRunningThresholdDays
	}

	return ad
}
