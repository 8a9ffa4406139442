package tracking

import (
	"fmt"
	"strings"
)

// UnknownBrandError indica que a marca solicitada não existe no registro.
// Carrega a lista de chaves válidas para a resposta 400.
type UnknownBrandError struct {
	Brand       string
	ValidBrands []string
}

// Error implementa a interface error
func (e *UnknownBrandError) Error() string {
	return fmt.Sprintf("unknown brand %q, valid brands: %s", e.Brand, strings.Join(e.ValidBrands, ", "))
}

// NewUnknownBrandError cria um novo UnknownBrandError
func NewUnknownBrandError(brand string, validBrands []string) *UnknownBrandError {
	return &UnknownBrandError{
		Brand:       brand,
		ValidBrands: validBrands,
	}
}
