package models

type ViralityDetail struct {
	ViralityScore      float64 `json:"virality_score"`
	BaseScore          float64 `json:"base_score"`
	EmotionBoost       float64 `json:"emotion_boost"`
	EmotionCount       int     `json:"emotion_count"`
	PolarityBoost      float64 `json:"polarity_boost"`
	PositiveBoost      float64 `json:"positive_boost"`
	NegativePenalty    float64 `json:"negative_penalty"`
	PlatformMultiplier float64 `json:"platform_multiplier"`
	Platform           string  `json:"platform"`
	Category           string  `json:"category"`
}

type BacklashDetail struct {
	BacklashRisk       float64 `json:"backlash_risk"`
	CulturalComponent  float64 `json:"cultural_component"`
	IntentComponent    float64 `json:"intent_component"`
	EMCComponent       float64 `json:"emc_component"`
	SentimentComponent float64 `json:"sentiment_component"`
	SeverityMultiplier float64 `json:"severity_multiplier"`
	CompoundEffect     bool    `json:"compound_effect"`
	RiskFactors        int     `json:"risk_factors"`
	CriticalAlerts     int     `json:"critical_alerts"`
	HighAlerts         int     `json:"high_alerts"`
	AlertCount         int     `json:"alert_count"`
	Category           string  `json:"category"`
}

type ExposureDetail struct {
	ExposureIntensity float64 `json:"exposure_intensity"`
	ViralityComponent float64 `json:"virality_component"`
	BacklashComponent float64 `json:"backlash_component"`
	Pattern           string  `json:"pattern"`
	Category          string  `json:"category"`
}

type FatigueDetail struct {
	AdFatigueRisk       float64 `json:"ad_fatigue_risk"`
	BaseRisk            float64 `json:"base_risk"`
	LengthPenalty       float64 `json:"length_penalty"`
	HashtagPenalty      float64 `json:"hashtag_penalty"`
	SubjectivityPenalty float64 `json:"subjectivity_penalty"`
	ExposureFactor      float64 `json:"exposure_factor"`
	WordCount           int     `json:"word_count"`
	HashtagCount        int     `json:"hashtag_count"`
	Category            string  `json:"category"`
}

// OutcomePrediction carries the integer-rounded report values alongside the
// full-precision breakdowns they were derived from.
type OutcomePrediction struct {
	ViralityScore     int `json:"virality_score"`
	BacklashRisk      int `json:"backlash_risk"`
	ExposureIntensity int `json:"exposure_intensity"`
	AdFatigueRisk     int `json:"ad_fatigue_risk"`

	Virality ViralityDetail `json:"virality_breakdown"`
	Backlash BacklashDetail `json:"backlash_breakdown"`
	Exposure ExposureDetail `json:"exposure_breakdown"`
	Fatigue  FatigueDetail  `json:"fatigue_breakdown"`
}
