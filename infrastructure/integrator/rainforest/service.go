package rainforest

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	rainforestdomain "github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/domain"
	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest/rainforestclient"
	"github.com/mosaicgrowth/competitor-intel-api/internal/config"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
)

// Sentinel de preço quando o produto não tem buybox winner
const priceNotAvailable = "N/A"

// Quantidade máxima de imagens expostas na resposta
const maxImages = 3

// ErrASINRequired indica chamada sem identificador de produto
var ErrASINRequired = errors.New("asin is required")

// ProductFetcher define a interface para buscar o resumo de um produto
type ProductFetcher interface {
	GetProductSummary(asin string) (*domain.ProductSummary, error)
}

type RainforestIntegrator struct {
	cfg    *config.Config
	Client rainforestclient.Client
}

func New(cfg *config.Config, client rainforestclient.Client) *RainforestIntegrator {
	return &RainforestIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetProductSummary busca um produto pelo ASIN e extrai o subconjunto fixo
// de campos do resumo
func (s *RainforestIntegrator) GetProductSummary(asin string) (*domain.ProductSummary, error) {
	if asin == "" {
		return nil, ErrASINRequired
	}

	product, err := s.Client.GetProduct(asin)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"asin":  asin,
			"error": err.Error(),
		}).Error("products: failed to fetch product data")
		return nil, err
	}

	summary := FactoryProductSummary(asin, product)

	logrus.WithFields(logrus.Fields{
		"asin":  asin,
		"title": summary.Title,
	}).Debug("products: successfully fetched product summary")

	return summary, nil
}

// FactoryProductSummary converte o registro cru do provedor no resumo do
// produto. Preço ausente vira "N/A" em vez de erro.
func FactoryProductSummary(asin string, product *rainforestdomain.Product) *domain.ProductSummary {
	summary := &domain.ProductSummary{
		ASIN:         asin,
		Title:        product.Title,
		Price:        priceNotAvailable,
		Rating:       product.Rating,
		TotalReviews: product.RatingsTotal,
		Images:       make([]string, 0, maxImages),
	}

	if product.BuyboxWinner != nil && product.BuyboxWinner.Price != nil && product.BuyboxWinner.Price.Raw != "" {
		summary.Price = product.BuyboxWinner.Price.Raw
	}

	if len(product.BestsellersRank) > 0 {
		first := product.BestsellersRank[0]
		summary.BSR = &domain.BestsellerRank{
			Category: first.Category,
			Rank:     first.Rank,
		}
	}

	for _, image := range product.Images {
		if len(summary.Images) == maxImages {
			break
		}
		if image.Link != "" {
			summary.Images = append(summary.Images, image.Link)
		}
	}

	// Produtos sem galeria ainda costumam ter a imagem principal
	if len(summary.Images) == 0 && product.MainImage != nil && product.MainImage.Link != "" {
		summary.Images = append(summary.Images, product.MainImage.Link)
	}

	return summary
}
