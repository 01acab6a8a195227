package models

type Recommendation struct {
	Status      string   `json:"status"`
	Action      string   `json:"action"`
	Message     string   `json:"message"`
	Reasoning   []string `json:"reasoning"`
	Suggestions []string `json:"suggestions"`
}

type SimilarCampaign struct {
	Brand    string `json:"brand"`
	Campaign string `json:"campaign"`
	Outcome  string `json:"outcome"`
	Lesson   string `json:"lesson"`
}
