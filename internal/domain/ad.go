package domain

// LongRunningThresholdDays define a partir de quantos dias de veiculação um
// anúncio é considerado "long running"
const LongRunningThresholdDays = 30

// Ad é um anúncio normalizado da Ad Library com os campos derivados de idade.
// DaysRunning fica nulo quando o anúncio não tem nenhuma data de início
// conhecida; nesse caso IsLongRunning é sempre falso.
type Ad struct {
	ID            string `json:"id"`
	PageName      string `json:"page_name"`
	AdCopy        string `json:"ad_copy"`
	SnapshotURL   string `json:"snapshot_url"`
	CreatedTime   string `json:"created_time,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	DaysRunning   *int   `json:"days_running"`
	IsLongRunning bool   `json:"is_long_running"`
}

// CompetitorAds agrupa os anúncios encontrados para um concorrente
type CompetitorAds struct {
	TotalAds       int   `json:"total_ads"`
	LongRunningAds int   `json:"long_running_ads"`
	Ads            []*Ad `json:"ads"`
}

// CompetitorAdsResponse é a resposta de GET /meta
type CompetitorAdsResponse struct {
	Status     string `json:"status"`
	Competitor string `json:"competitor"`
	TotalAds   int    `json:"total_ads"`
	Ads        []*Ad  `json:"ads"`
}

// BrandAdsResponse é a resposta de GET /meta/brand. Errors só aparece quando
// algum concorrente falhou; os demais resultados permanecem íntegros.
type BrandAdsResponse struct {
	Status             string                    `json:"status"`
	Brand              string                    `json:"brand"`
	CompetitorsTracked int                       `json:"competitors_tracked"`
	TotalAdsFetched    int                       `json:"total_ads_fetched"`
	Results            map[string]*CompetitorAds `json:"results"`
	Errors             map[string]string         `json:"errors,omitempty"`
}

// DashboardSummary são as estatísticas agregadas de uma marca
type DashboardSummary struct {
	TotalAds           int `json:"total_ads"`
	CompetitorsTracked int `json:"competitors_tracked"`
	LongRunningAds     int `json:"long_running_ads"`
	AvgDaysRunning     int `json:"avg_days_running"`
}

// DashboardResponse é a resposta de GET /dashboard
type DashboardResponse struct {
	Status         string            `json:"status"`
	Brand          string            `json:"brand"`
	Summary        *DashboardSummary `json:"summary"`
	TopLongRunning []*Ad             `json:"top_long_running"`
	AllAds         []*Ad             `json:"all_ads"`
}
