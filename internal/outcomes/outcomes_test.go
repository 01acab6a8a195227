package outcomes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/adpulse/internal/models"
)

func TestPredictVirality(t *testing.T) {
	sentiment := models.Sentiment{Polarity: 0.7}

	// base 70*0.7 = 49, emotions 2*3 = 6, polarity 8, positive 12, x1.10
	got := PredictVirality(70, []string{"joy", "humor"}, sentiment, "TikTok")

	assert.InDelta(t, 82.5, got.ViralityScore, 0.01)
	assert.Equal(t, 1.10, got.PlatformMultiplier)
	assert.Equal(t, "very_high", got.Category)
}

func TestPredictVirality_NegativePenalty(t *testing.T) {
	mild := PredictVirality(50, nil, models.Sentiment{Polarity: -0.4}, "YouTube")
	harsh := PredictVirality(50, nil, models.Sentiment{Polarity: -0.7}, "YouTube")

	assert.Equal(t, 10.0, mild.NegativePenalty)
	assert.Equal(t, 18.0, harsh.NegativePenalty)
	// the high-arousal polarity boost offsets part of the harsher penalty
	assert.Equal(t, 8.0, harsh.PolarityBoost)
	assert.Equal(t, 25.0, mild.ViralityScore)
	assert.Equal(t, 25.0, harsh.ViralityScore)
}

func TestPredictVirality_UnknownPlatform(t *testing.T) {
	got := PredictVirality(50, nil, models.Sentiment{}, "myspace")
	assert.Equal(t, 1.0, got.PlatformMultiplier)
}

func TestPredictVirality_EmotionBoostCap(t *testing.T) {
	emotions := []string{"joy", "pride", "nostalgia", "humor", "inspiration", "urgency"}
	got := PredictVirality(0, emotions, models.Sentiment{}, "YouTube")
	assert.Equal(t, 15.0, got.EmotionBoost)
}

func TestPredictBacklash_IntentTiers(t *testing.T) {
	tests := []struct {
		intent float64
		want   float64
	}{
		{-60, 40}, // 100 * 0.40
		{-30, 32},
		{-10, 24},
		{10, 16},
		{50, 8},
	}

	for _, tt := range tests {
		got := PredictBacklash(tt.intent, 0, nil, models.Sentiment{}, 50)
		assert.InDelta(t, tt.want, got.IntentComponent, 0.01)
	}
}

func TestPredictBacklash_SeverityMultiplier(t *testing.T) {
	critical := []models.CulturalAlert{{Severity: "critical", RiskWeight: 40}}
	high := []models.CulturalAlert{{Severity: "high", RiskWeight: 40}}
	medium := []models.CulturalAlert{{Severity: "medium", RiskWeight: 40}}

	gotCritical := PredictBacklash(50, 0, critical, models.Sentiment{}, 50)
	gotHigh := PredictBacklash(50, 0, high, models.Sentiment{}, 50)
	gotMedium := PredictBacklash(50, 0, medium, models.Sentiment{}, 50)

	assert.Equal(t, 1.5, gotCritical.SeverityMultiplier)
	assert.Equal(t, 1.3, gotHigh.SeverityMultiplier)
	assert.Equal(t, 1.0, gotMedium.SeverityMultiplier)
	assert.Greater(t, gotCritical.CulturalComponent, gotHigh.CulturalComponent)
	assert.Greater(t, gotHigh.CulturalComponent, gotMedium.CulturalComponent)
}

func TestPredictBacklash_CompoundEffect(t *testing.T) {
	// Two risk factors: no compound escalation.
	two := PredictBacklash(-30, 0, nil, models.Sentiment{Polarity: -0.5}, 50)
	assert.Equal(t, 2, two.RiskFactors)
	assert.False(t, two.CompoundEffect)

	// Four risk factors: escalated 1.3x.
	alerts := []models.CulturalAlert{{Severity: "critical", RiskWeight: 40}}
	four := PredictBacklash(-30, 0, alerts, models.Sentiment{Polarity: -0.5}, 80)
	assert.GreaterOrEqual(t, four.RiskFactors, 3)
	assert.True(t, four.CompoundEffect)
	assert.LessOrEqual(t, four.BacklashRisk, 100.0)
}

func TestExposureIntensity_Patterns(t *testing.T) {
	tests := []struct {
		name     string
		virality float64
		backlash float64
		pattern  string
	}{
		{"controversial viral", 70, 70, "controversial_viral"},
		{"positive viral", 70, 20, "positive_viral"},
		{"controversial", 30, 70, "controversial"},
		{"normal", 40, 40, "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExposureIntensity(tt.virality, tt.backlash)
			assert.Equal(t, tt.pattern, got.Pattern)
			assert.InDelta(t, tt.virality*0.6+tt.backlash*0.4, got.ExposureIntensity, 0.01)
		})
	}
}

func TestPredictAdFatigue(t *testing.T) {
	short := PredictAdFatigue(0, "Short and sweet", models.Sentiment{})
	assert.Equal(t, 30.0, short.AdFatigueRisk)

	long := PredictAdFatigue(0, strings.Repeat("word ", 120), models.Sentiment{})
	assert.Equal(t, 25.0, long.LengthPenalty)

	hashtags := PredictAdFatigue(0, "#a #b #c #d #e #f #g #h", models.Sentiment{})
	assert.Equal(t, 8, hashtags.HashtagCount)
	assert.Equal(t, 6.0, hashtags.HashtagPenalty)

	subjective := PredictAdFatigue(0, "ok", models.Sentiment{Subjectivity: 0.8})
	assert.Equal(t, 20.0, subjective.SubjectivityPenalty)

	exposed := PredictAdFatigue(80, "ok", models.Sentiment{})
	assert.Equal(t, 24.0, exposed.ExposureFactor)
	assert.Equal(t, 54.0, exposed.AdFatigueRisk)
}

func TestPredictAll_IntegerReport(t *testing.T) {
	got := PredictAll(70, []string{"joy"}, models.Sentiment{Polarity: 0.5},
		"Instagram", 40, 10, nil, "A short caption", 55)

	assert.Equal(t, int(got.Virality.ViralityScore+0.5), got.ViralityScore)
	assert.GreaterOrEqual(t, got.ViralityScore, 0)
	assert.LessOrEqual(t, got.ViralityScore, 100)
	assert.GreaterOrEqual(t, got.BacklashRisk, 0)
	assert.Equal(t, got.Exposure.Pattern, "positive_viral")
}
