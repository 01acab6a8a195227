package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adpulse/internal/models"
)

func TestAuthenticityScore(t *testing.T) {
	tests := []struct {
		name      string
		sentiment models.Sentiment
		scs       float64
		emc       float64
		want      float64
	}{
		// sentiment 75*0.3 + lowSCS 100*0.4 + emc band 100*0.3
		{"ideal band", models.Sentiment{Polarity: 0.5}, 0, 55, 92.5},
		// emc below the band decays linearly: (20/40)*100 = 50 appropriateness
		{"low emc", models.Sentiment{Polarity: 0.5}, 0, 20, 77.5},
		// emc at 100: max(0, 100-100) = 0 appropriateness
		{"excessive emc", models.Sentiment{Polarity: 0.5}, 0, 100, 62.5},
		// high scs wipes out the biggest component
		{"high scs", models.Sentiment{Polarity: 0.5}, 100, 55, 52.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AuthenticityScore(tt.sentiment, tt.scs, tt.emc), 0.01)
		})
	}
}

func TestManipulationRisk(t *testing.T) {
	// scs 50*0.4 + no excessive emc + subjectivity 0.5*100*0.3
	got := ManipulationRisk(50, 60, models.Sentiment{Subjectivity: 0.5})
	assert.InDelta(t, 35.0, got, 0.01)

	// emc 85: ((85-70)/30)*100 = 50 excessive, *0.3 = 15 extra
	withEMC := ManipulationRisk(50, 85, models.Sentiment{Subjectivity: 0.5})
	assert.InDelta(t, 50.0, withEMC, 0.01)
}

func TestDetectManipulationPatterns_RequiresCompanion(t *testing.T) {
	sentiment := models.Sentiment{}

	// Trigger alone does not fire.
	assert.Empty(t, DetectManipulationPatterns("Dont let anything stop you", 0, sentiment))

	findings := DetectManipulationPatterns(
		"Dont let dark skin hold you back. Transform your look today!", 0, sentiment)
	require.NotEmpty(t, findings)
	assert.Equal(t, "insecurity_exploitation", findings[0].Pattern)
	assert.Equal(t, 40.0, findings[0].Penalty)
}

func TestDetectManipulationPatterns_PositiveHarmfulFraming(t *testing.T) {
	findings := DetectManipulationPatterns("Beautiful festive vibes!", 60,
		models.Sentiment{Polarity: 0.5})

	require.Len(t, findings, 1)
	assert.Equal(t, "positive_harmful_framing", findings[0].Pattern)
	assert.Equal(t, 25.0, findings[0].Penalty)

	// Needs both high SCS and positive polarity.
	assert.Empty(t, DetectManipulationPatterns("Beautiful festive vibes!", 60,
		models.Sentiment{Polarity: 0.1}))
	assert.Empty(t, DetectManipulationPatterns("Beautiful festive vibes!", 40,
		models.Sentiment{Polarity: 0.5}))
}

func TestAssessIntent_Categories(t *testing.T) {
	// Clean positive content in the EMC sweet spot reads as authentic.
	authentic := AssessIntent(55, 10, 0, models.Sentiment{Polarity: 0.6}, "A lovely day out")
	assert.Equal(t, "authentic", authentic.Category)
	assert.Greater(t, authentic.IntentScore, 20.0)
	assert.Equal(t, "high", authentic.Confidence)

	// Heavy cultural risk plus manipulation patterns turns manipulative.
	manipulative := AssessIntent(90, 70, 90, models.Sentiment{Polarity: -0.2, Subjectivity: 0.9},
		"Dont let your problem hold you back, our secret solution will transform you. Act now, hurry!")
	assert.Equal(t, "manipulative", manipulative.Category)
	assert.Less(t, manipulative.IntentScore, -20.0)
	assert.Equal(t, "low", manipulative.Confidence)
}

func TestAssessIntent_AmbiguityAnnotation(t *testing.T) {
	got := AssessIntent(50, 70, 0, models.Sentiment{Polarity: 0.3}, "plain text")

	assert.Equal(t, "high", got.AmbiguityFactor)
	assert.Contains(t, got.Interpretation, "High ambiguity")
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		nam  float64
		scs  float64
		want string
	}{
		{0, 0, "high"},
		{40, 30, "medium"},
		{80, 60, "low"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.nam, tt.scs))
	}
}

func TestAssessIntent_ScoreBounds(t *testing.T) {
	got := AssessIntent(100, 100, 100, models.Sentiment{Polarity: -1, Subjectivity: 1},
		"Dont let your ugly problem hold you back, say goodbye, transform now before its too late, hurry")

	assert.GreaterOrEqual(t, got.IntentScore, -100.0)
	assert.LessOrEqual(t, got.ManipulationRisk, 100.0)
}
