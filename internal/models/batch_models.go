package models

type CampaignBatch struct {
	BatchID  string            `json:"batch_id"`
	Requests []AnalysisRequest `json:"requests"`
}

type CampaignResult struct {
	RequestID string            `json:"request_id"`
	Response  *AnalysisResponse `json:"response,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type CampaignResultBatch struct {
	BatchID string           `json:"batch_id"`
	Results []CampaignResult `json:"results"`
}
