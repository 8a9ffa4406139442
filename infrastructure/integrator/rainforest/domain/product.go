package rainforestdomain

// ResponseProduct é o envelope de resposta da API de produtos
type ResponseProduct struct {
	RequestInfo RequestInfo `json:"request_info"`
	Product     Product     `json:"product"`
}

// RequestInfo indica se a consulta foi aceita pelo provedor
type RequestInfo struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Product é o registro cru do produto como retornado pelo provedor
type Product struct {
	ASIN            string           `json:"asin"`
	Title           string           `json:"title"`
	Rating          float64          `json:"rating"`
	RatingsTotal    int              `json:"ratings_total"`
	BuyboxWinner    *BuyboxWinner    `json:"buybox_winner"`
	BestsellersRank []BestsellerRank `json:"bestsellers_rank"`
	MainImage       *Image           `json:"main_image"`
	Images          []Image          `json:"images"`
}

// BuyboxWinner carrega a oferta vencedora da buybox, quando existe
type BuyboxWinner struct {
	Price *Price `json:"price"`
}

// Price é o preço formatado pelo provedor
type Price struct {
	Raw      string  `json:"raw"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// BestsellerRank é uma posição de best-seller em uma categoria
type BestsellerRank struct {
	Category string `json:"category"`
	Rank     int    `json:"rank"`
}

// Image é uma URL de imagem do produto
type Image struct {
	Link string `json:"link"`
}
