package models

type ManipulationFinding struct {
	Pattern string   `json:"pattern"`
	Penalty float64  `json:"penalty"`
	Matched []string `json:"matched"`
}

type IntentAssessment struct {
	IntentScore      float64               `json:"intent_score"`
	Authenticity     float64               `json:"authenticity"`
	ManipulationRisk float64               `json:"manipulation_risk"`
	Category         string                `json:"category"`
	Interpretation   string                `json:"interpretation"`
	AmbiguityFactor  string                `json:"ambiguity_factor"`
	Confidence       string                `json:"confidence"`
	Patterns         []ManipulationFinding `json:"manipulation_patterns"`
}
