package registry

// Mapeamento estático de marca -> concorrentes monitorados. Construído uma
// única vez no início do processo; nenhum caminho de código altera as listas.
var brandCompetitors = map[string][]string{
	"manMatters": {
		"Beardo",
		"The Man Company",
		"Ustraa",
		"Bombay Shaving Company",
		"Mamaearth",
		"Traya",
		"ForMen",
	},
	"beBodywise": {
		"Plum Goodness",
		"Mamaearth",
		"WOW Skin Science",
		"Dot & Key",
		"Minimalist",
	},
	"littleJoys": {
		"Slurrp Farm",
		"Happa Foods",
		"Timios",
		"Early Foods",
	},
}

// Ordem estável das chaves para mensagens de erro e respostas
var brandKeys = []string{"manMatters", "beBodywise", "littleJoys"}

// Competitors retorna a lista ordenada de concorrentes de uma marca. O slice
// retornado é uma cópia, preservando a imutabilidade do registro.
func Competitors(brand string) ([]string, bool) {
	competitors, ok := brandCompetitors[brand]
	if !ok {
		return nil, false
	}

	out := make([]string, len(competitors))
	copy(out, competitors)
	return out, true
}

// Brands retorna as chaves de marca válidas em ordem estável
func Brands() []string {
	out := make([]string, len(brandKeys))
	copy(out, brandKeys)
	return out
}
