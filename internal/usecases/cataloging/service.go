package cataloging

import (
	"github.com/mosaicgrowth/competitor-intel-api/infrastructure/integrator/rainforest"
	"github.com/mosaicgrowth/competitor-intel-api/internal/domain"
)

// CatalogService define a interface de consulta de produtos
type CatalogService interface {
	GetProduct(asin string) (*domain.ProductResponse, error)
}

type Service struct {
	productService rainforest.ProductFetcher
}

// NewService cria uma nova instância do serviço de catálogo
func NewService(productService rainforest.ProductFetcher) CatalogService {
	return &Service{
		productService: productService,
	}
}

// GetProduct busca o resumo de um produto pelo ASIN
func (s *Service) GetProduct(asin string) (*domain.ProductResponse, error) {
	summary, err := s.productService.GetProductSummary(asin)
	if err != nil {
		return nil, err
	}

	return &domain.ProductResponse{
		Status:         "success",
		ProductSummary: summary,
	}, nil
}
