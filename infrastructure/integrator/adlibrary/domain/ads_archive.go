package adlibrarydomain

// ArchivedAd é o registro cru retornado pela busca na Ad Library
type ArchivedAd struct {
	ID                  string   `json:"id"`
	PageName            string   `json:"page_name"`
	AdCreationTime      string   `json:"ad_creation_time"`
	AdDeliveryStartTime string   `json:"ad_delivery_start_time"`
	AdCreativeBodies    []string `json:"ad_creative_bodies"`
	AdSnapshotURL       string   `json:"ad_snapshot_url"`
}

// ResponseAdsArchive é o envelope de dados da busca
type ResponseAdsArchive struct {
	Data []ArchivedAd `json:"data"`
}
