package models

type VisualFlag struct {
	Element  string `json:"element"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// VisualSignal is the contract returned by the vision collaborator.
type VisualSignal struct {
	VisualEmotions         []string     `json:"visual_emotions"`
	CulturalSymbols        []string     `json:"cultural_symbols"`
	SensitivityFlags       []VisualFlag `json:"sensitivity_flags"`
	TextOverlay            string       `json:"text_overlay"`
	EmotionalTone          string       `json:"emotional_tone"`
	SkinToneRepresentation string       `json:"skin_tone_representation"`
	FestivalReferences     []string     `json:"festival_references"`
	VisualEMCScore         float64      `json:"visual_emc_score"`
	VisualSCSScore         float64      `json:"visual_scs_score"`
}

type FusedSignals struct {
	Mode              string   `json:"mode"`
	EMCScore          float64  `json:"emc_score"`
	SCSScore          float64  `json:"scs_score"`
	Emotions          []string `json:"emotions"`
	CulturalSymbols   []string `json:"cultural_symbols,omitempty"`
	SensitivityFlags  []string `json:"sensitivity_flags,omitempty"`
	PrimaryRiskSource string   `json:"primary_risk_source,omitempty"`
	EmotionAgreement  float64  `json:"emotion_agreement"`
	HasVisual         bool     `json:"has_image_analysis"`
}
