package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompetitors(t *testing.T) {
	tests := []struct {
		name          string
		brand         string
		expectedOK    bool
		expectedCount int
	}{
		{
			name:          "manMatters possui 7 concorrentes",
			brand:         "manMatters",
			expectedOK:    true,
			expectedCount: 7,
		},
		{
			name:          "beBodywise possui 5 concorrentes",
			brand:         "beBodywise",
			expectedOK:    true,
			expectedCount: 5,
		},
		{
			name:          "littleJoys possui 4 concorrentes",
			brand:         "littleJoys",
			expectedOK:    true,
			expectedCount: 4,
		},
		{
			name:       "Marca desconhecida retorna false",
			brand:      "unknown",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			competitors, ok := Competitors(tt.brand)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Len(t, competitors, tt.expectedCount)
		})
	}
}

func TestCompetitorsReturnsCopy(t *testing.T) {
	first, ok := Competitors("manMatters")
	assert.True(t, ok)

	// Mutação no slice retornado não pode vazar para o registro
	first[0] = "alterado"

	second, _ := Competitors("manMatters")
	assert.Equal(t, "Beardo", second[0])
}

func TestBrands(t *testing.T) {
	brands := Brands()

	// Exatamente as três chaves válidas, em ordem estável
	assert.Equal(t, []string{"manMatters", "beBodywise", "littleJoys"}, brands)
}
