package models

type AnalysisRequest struct {
	RequestID   string `json:"request_id,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Platform    string `json:"platform"`
	PostingDate string `json:"posting_date,omitempty"`
	Influencer  bool   `json:"influencer"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

type EmotionalMoralContent struct {
	EMCScore     float64  `json:"emc_score"`
	Emotions     []string `json:"emotions"`
	MoralFraming bool     `json:"moral_framing"`
	ArousalLevel float64  `json:"arousal_level"`
}

type NarrativeAmbiguity struct {
	NAMScore             float64 `json:"nam_score"`
	Clarity              float64 `json:"clarity"`
	InterpretiveOpenness float64 `json:"interpretive_openness"`
}

type SocioCulturalSensitivity struct {
	SCSScore          float64        `json:"scs_score"`
	TriggersFound     int            `json:"triggers_found"`
	FestivalProximity *CulturalAlert `json:"festival_proximity,omitempty"`
}

type PerceivedIntentSummary struct {
	IntentScore      float64 `json:"intent_score"`
	Authenticity     float64 `json:"authenticity"`
	ManipulationRisk float64 `json:"manipulation_risk"`
	Interpretation   string  `json:"interpretation"`
	Confidence       string  `json:"confidence"`
}

type AnalysisResponse struct {
	AnalysisType string `json:"analysis_type"`

	EmotionalMoralContent    EmotionalMoralContent    `json:"emotional_moral_content"`
	NarrativeAmbiguity       NarrativeAmbiguity       `json:"narrative_ambiguity"`
	SocioCulturalSensitivity SocioCulturalSensitivity `json:"socio_cultural_sensitivity"`

	PerceivedIntent PerceivedIntentSummary `json:"perceived_intent"`
	TPBScores       TPBScores              `json:"tpb_scores"`

	ViralityScore     int `json:"virality_score"`
	BacklashRisk      int `json:"backlash_risk"`
	AdFatigueRisk     int `json:"ad_fatigue_risk"`
	ExposureIntensity int `json:"exposure_intensity"`

	CulturalAlerts   []CulturalAlert   `json:"cultural_alerts"`
	Sentiment        Sentiment         `json:"sentiment"`
	Recommendation   Recommendation    `json:"recommendation"`
	SimilarCampaigns []SimilarCampaign `json:"similar_campaigns"`

	ImageAnalysis *VisualSignal `json:"image_analysis,omitempty"`
	ExtractedText string        `json:"extracted_text,omitempty"`
}
