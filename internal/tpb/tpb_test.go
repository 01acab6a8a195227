package tpb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/adpulse/internal/models"
)

func TestAttitude(t *testing.T) {
	sentiment := models.Sentiment{Polarity: 0.6}

	// sentiment ((0.6+1)/2)*100*0.5 = 40, emc 50*0.3 = 15, intent ((20+100)/2)*0.2 = 12
	got := Attitude(sentiment, 50, 20, nil)
	assert.InDelta(t, 67.0, got.Attitude, 0.01)

	// pride adds 10, joy adds 5
	boosted := Attitude(sentiment, 50, 20, []string{"pride", "joy"})
	assert.InDelta(t, 82.0, boosted.Attitude, 0.01)
	assert.Equal(t, 15.0, boosted.EmotionBoost)
}

func TestAttitude_CapAt100(t *testing.T) {
	got := Attitude(models.Sentiment{Polarity: 1}, 100, 100, []string{"pride", "nostalgia", "joy"})
	assert.Equal(t, 100.0, got.Attitude)
}

func TestSubjectiveNorms(t *testing.T) {
	tests := []struct {
		name       string
		platform   string
		influencer bool
		emotions   []string
		want       float64
		multiplier float64
	}{
		{"youtube base", "YouTube", false, nil, 50, 1.0},
		{"instagram influencer", "Instagram", true, nil, 97.5, 1.3},
		{"tiktok influencer pride caps", "TikTok", true, []string{"pride"}, 100, 1.4},
		{"unknown platform", "orkut", false, nil, 50, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SubjectiveNorms(tt.platform, tt.influencer, tt.emotions)
			assert.InDelta(t, tt.want, got.SubjectiveNorms, 0.01)
			assert.Equal(t, tt.multiplier, got.PlatformMultiplier)
		})
	}
}

func TestPerceivedControl(t *testing.T) {
	clean := PerceivedControl(models.Sentiment{Polarity: 0.3, Subjectivity: 0.4}, 20)
	assert.Equal(t, 70.0, clean.PerceivedControl)

	// all three penalties: 70 - 10 - 15 - 20 = 25
	penalized := PerceivedControl(models.Sentiment{Polarity: -0.5, Subjectivity: 0.8}, 60)
	assert.Equal(t, 25.0, penalized.PerceivedControl)
	assert.Equal(t, 10.0, penalized.SubjectivityPenalty)
	assert.Equal(t, 15.0, penalized.AmbiguityPenalty)
	assert.Equal(t, 20.0, penalized.SentimentPenalty)
}

func TestBehavioralIntention(t *testing.T) {
	got := BehavioralIntention(80, 70, 60)

	// 80*0.40 + 70*0.35 + 60*0.25 = 71.5
	assert.InDelta(t, 71.5, got.BehavioralIntention, 0.01)
	assert.Equal(t, "high", got.Category)
}

func TestBehavioralIntention_Categories(t *testing.T) {
	tests := []struct {
		score    float64
		category string
	}{
		{80, "very_high"},
		{65, "high"},
		{50, "moderate"},
		{35, "low"},
		{10, "very_low"},
	}

	for _, tt := range tests {
		got := BehavioralIntention(tt.score, tt.score, tt.score)
		assert.Equal(t, tt.category, got.Category)
	}
}

func TestCompute(t *testing.T) {
	sentiment := models.Sentiment{Polarity: 0.6, Subjectivity: 0.3}

	got := Compute(sentiment, 55, 30, 20, []string{"joy", "pride"}, "Instagram", true)

	assert.Equal(t, got.AttitudeDetail.Attitude, got.TPBScores.Attitude)
	assert.Equal(t, got.NormsDetail.SubjectiveNorms, got.TPBScores.SubjectiveNorms)
	assert.Equal(t, got.ControlDetail.PerceivedControl, got.TPBScores.PerceivedControl)
	assert.Equal(t, got.IntentionDetail.BehavioralIntention, got.TPBScores.BehavioralIntention)
	assert.Greater(t, got.TPBScores.BehavioralIntention, 0.0)
	assert.LessOrEqual(t, got.TPBScores.BehavioralIntention, 100.0)
}
