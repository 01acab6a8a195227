package models

type TPBScores struct {
	Attitude            float64 `json:"attitude"`
	SubjectiveNorms     float64 `json:"subjective_norms"`
	PerceivedControl    float64 `json:"perceived_control"`
	BehavioralIntention float64 `json:"behavioral_intention"`
}

type AttitudeDetail struct {
	Attitude           float64 `json:"attitude"`
	SentimentComponent float64 `json:"sentiment_component"`
	EMCComponent       float64 `json:"emc_component"`
	IntentComponent    float64 `json:"intent_component"`
	EmotionBoost       float64 `json:"emotion_boost"`
}

type NormsDetail struct {
	SubjectiveNorms    float64 `json:"subjective_norms"`
	BaseScore          float64 `json:"base_score"`
	InfluencerBoost    float64 `json:"influencer_boost"`
	PrideBoost         float64 `json:"pride_boost"`
	PlatformMultiplier float64 `json:"platform_multiplier"`
	Platform           string  `json:"platform"`
}

type ControlDetail struct {
	PerceivedControl    float64 `json:"perceived_control"`
	BaseScore           float64 `json:"base_score"`
	SubjectivityPenalty float64 `json:"subjectivity_penalty"`
	AmbiguityPenalty    float64 `json:"ambiguity_penalty"`
	SentimentPenalty    float64 `json:"sentiment_penalty"`
}

type IntentionDetail struct {
	BehavioralIntention float64 `json:"behavioral_intention"`
	AttitudeComponent   float64 `json:"attitude_component"`
	NormsComponent      float64 `json:"norms_component"`
	ControlComponent    float64 `json:"control_component"`
	Category            string  `json:"category"`
	Interpretation      string  `json:"interpretation"`
}

type TPBScoreSet struct {
	TPBScores

	AttitudeDetail  AttitudeDetail  `json:"attitude_breakdown"`
	NormsDetail     NormsDetail     `json:"norms_breakdown"`
	ControlDetail   ControlDetail   `json:"control_breakdown"`
	IntentionDetail IntentionDetail `json:"intention_breakdown"`
}
