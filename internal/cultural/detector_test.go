package cultural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adpulse/internal/models"
)

func testTriggers() []models.CulturalTrigger {
	return []models.CulturalTrigger{
		{Keyword: "beef", Category: "Religious", Severity: "critical", RiskWeight: 35,
			AlertMessage: "Beef references are highly sensitive"},
		{Keyword: "fair skin", Category: "Colorism", Severity: "critical", RiskWeight: 38,
			AlertMessage: "Fair skin references promote colorism"},
		{Keyword: "border", Category: "Geopolitical", Severity: "medium", RiskWeight: 20,
			AlertMessage: "Border references can be polarizing"},
	}
}

func testFestivals() []models.Festival {
	return []models.Festival{
		{FestivalName: "Diwali", Date: "2025-10-20",
			SensitivityKeywords: []string{"alcohol", "beef", "gambling"}},
		{FestivalName: "Eid", Date: "2025-03-31",
			SensitivityKeywords: []string{"pork", "alcohol"}},
	}
}

func TestDetectTriggers_WordBoundary(t *testing.T) {
	d := NewDetector(testTriggers(), nil)

	// "beefy" must not match the "beef" trigger.
	assert.Empty(t, d.DetectTriggers("Our beefy new phone has a big battery", nil))

	alerts := d.DetectTriggers("A delicious beef recipe for dinner", nil)
	require.Len(t, alerts, 1)
	assert.Equal(t, "beef", alerts[0].Keyword)
	assert.Equal(t, "Religious", alerts[0].Category)
	assert.Equal(t, "text", alerts[0].Source)
}

func TestDetectTriggers_VisualFlags(t *testing.T) {
	d := NewDetector(nil, nil)

	visual := &models.VisualSignal{
		SensitivityFlags: []models.VisualFlag{
			{Element: "religious imagery", Category: "Religious", Severity: "high",
				Message: "Visual content flagged: religious imagery"},
		},
	}

	alerts := d.DetectTriggers("a plain caption", visual)
	require.Len(t, alerts, 1)
	assert.Equal(t, "image", alerts[0].Source)
	assert.Equal(t, 30, alerts[0].RiskWeight)
}

func TestDetectCompoundPatterns(t *testing.T) {
	// Primary alone does not fire.
	assert.Empty(t, DetectCompoundPatterns("She has dark skin and a bright smile"))

	// Primary plus amplifier plus solution escalates hard.
	alerts := DetectCompoundPatterns("Dark skin is a barrier to your career. Try our new serum!")
	require.NotEmpty(t, alerts)
	assert.Equal(t, "Colorism Discrimination", alerts[0].Keyword)
	assert.Equal(t, models.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "compound_detection", alerts[0].Source)
	// base 40 x multiplier 2.5 x compound factor 2 = 200
	assert.Equal(t, 200, alerts[0].RiskWeight)
}

func TestCheckFestivalProximity(t *testing.T) {
	d := NewDetector(nil, testFestivals())

	tests := []struct {
		name        string
		postingDate string
		content     string
		wantAlerts  int
		severity    string
	}{
		{"no keyword conflict", "2025-10-19", "Celebrate the season with sweets", 0, ""},
		{"too far away", "2025-09-01", "Enjoy alcohol responsibly", 0, ""},
		{"within 7 days with conflict", "2025-10-14", "Enjoy alcohol responsibly", 1, models.SeverityHigh},
		{"within 3 days with conflict", "2025-10-19", "Enjoy alcohol responsibly", 1, models.SeverityCritical},
		{"unparseable date", "next tuesday", "Enjoy alcohol responsibly", 0, ""},
		{"empty date", "", "Enjoy alcohol responsibly", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := d.CheckFestivalProximity(tt.postingDate, tt.content)
			require.Len(t, alerts, tt.wantAlerts)
			if tt.wantAlerts > 0 {
				assert.Equal(t, tt.severity, alerts[0].Severity)
				assert.Equal(t, "festival", alerts[0].Source)
				assert.Equal(t, "Diwali", alerts[0].Festival)
				assert.Contains(t, alerts[0].Conflicts, "alcohol")
			}
		})
	}
}

func TestDetect_ScoreAggregation(t *testing.T) {
	d := NewDetector(testTriggers(), testFestivals())

	got := d.Detect("A beef festival near the border", "", nil)

	// beef (critical, 35) + border (medium, 20), plus 10 per norm violation.
	assert.Equal(t, 2, got.TriggersFound)
	assert.Equal(t, 55, got.TotalRiskWeight)
	assert.Equal(t, 1, got.NormViolations)
	assert.Equal(t, 65.0, got.SCSScore)
	assert.Equal(t, 1, got.Severity.Critical)
	assert.Equal(t, 1, got.Severity.Medium)
}

func TestDetect_ClampsAt100(t *testing.T) {
	d := NewDetector(testTriggers(), nil)

	got := d.Detect("Dark skin is a barrier to marriage, use our fairness serum for fair skin", "", nil)

	assert.Equal(t, 100.0, got.SCSScore)
	assert.NotEmpty(t, got.Alerts)
}

func TestDetect_EmptyText(t *testing.T) {
	d := NewDetector(testTriggers(), testFestivals())

	got := d.Detect("   ", "2025-10-20", nil)

	assert.Zero(t, got.SCSScore)
	assert.Empty(t, got.Alerts)
}
