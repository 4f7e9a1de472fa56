package domain

// AdInsightRow é uma linha de métricas retornada pela API de insights.
// Os campos numéricos chegam como string e são convertidos na
// normalização; campos ausentes ficam vazios.
type AdInsightRow struct {
	AdID        string `json:"ad_id"`
	AdName      string `json:"ad_name"`
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

type MeProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
