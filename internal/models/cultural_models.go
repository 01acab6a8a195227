package models

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

type CulturalAlert struct {
	Keyword    string `json:"keyword"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	RiskWeight int    `json:"risk_weight"`
	Message    string `json:"message"`
	Source     string `json:"source"`

	// Compound-pattern extras
	Amplifiers []string `json:"amplifiers,omitempty"`
	Solutions  []string `json:"solutions,omitempty"`

	// Festival-proximity extras
	Festival     string   `json:"festival,omitempty"`
	FestivalDate string   `json:"festival_date,omitempty"`
	DaysAway     int      `json:"days_away,omitempty"`
	Conflicts    []string `json:"conflicts,omitempty"`
}

type SeverityBreakdown struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type CulturalAssessment struct {
	SCSScore        float64           `json:"scs_score"`
	TriggersFound   int               `json:"triggers_found"`
	FestivalAlerts  int               `json:"festival_alerts"`
	TotalRiskWeight int               `json:"total_risk_weight"`
	NormViolations  int               `json:"norm_violations"`
	Alerts          []CulturalAlert   `json:"alerts"`
	Severity        SeverityBreakdown `json:"severity_breakdown"`
}
