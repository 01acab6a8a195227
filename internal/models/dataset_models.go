package models

type CulturalTrigger struct {
	Keyword      string `json:"keyword" dynamodbav:"keyword"`
	Category     string `json:"category" dynamodbav:"category"`
	AlertMessage string `json:"alert_message" dynamodbav:"alert_message"`
	Severity     string `json:"severity" dynamodbav:"severity"`
	RiskWeight   int    `json:"risk_weight" dynamodbav:"risk_weight"`
}

type Festival struct {
	FestivalName        string   `json:"festival_name" dynamodbav:"festival_name"`
	Date                string   `json:"date" dynamodbav:"date"`
	SensitivityKeywords []string `json:"sensitivity_keywords" dynamodbav:"sensitivity_keywords"`
	Description         string   `json:"description" dynamodbav:"description"`
}

type HistoricalCampaign struct {
	Brand            string `json:"brand" dynamodbav:"brand"`
	CampaignName     string `json:"campaign_name" dynamodbav:"campaign_name"`
	Platform         string `json:"platform" dynamodbav:"platform"`
	BacklashOccurred bool   `json:"backlash_occurred" dynamodbav:"backlash_occurred"`
	ViralityScore    int    `json:"virality_score" dynamodbav:"virality_score"`
	Outcome          string `json:"outcome" dynamodbav:"outcome"`
	LessonsLearned   string `json:"lessons_learned" dynamodbav:"lessons_learned"`
}
