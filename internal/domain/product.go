package domain

// BestsellerRank é a primeira posição de best-seller retornada para o produto
type BestsellerRank struct {
	Category string `json:"category"`
	Rank     int    `json:"rank"`
}

// ProductSummary é o subconjunto fixo de campos extraído do produto.
// Price usa o sentinel "N/A" quando não há buybox winner.
type ProductSummary struct {
	ASIN         string          `json:"asin"`
	Title        string          `json:"title"`
	Price        string          `json:"price"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"total_reviews"`
	BSR          *BestsellerRank `json:"bsr"`
	Images       []string        `json:"images"`
}

// ProductResponse é a resposta de GET /amazon
type ProductResponse struct {
	Status string `json:"status"`
	*ProductSummary
}
