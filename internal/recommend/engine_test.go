package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adpulse/internal/models"
)

func testCampaigns() []models.HistoricalCampaign {
	return []models.HistoricalCampaign{
		{Brand: "GlowCo", CampaignName: "Festival of Shine", Platform: "Instagram",
			ViralityScore: 85, BacklashOccurred: false, Outcome: "viral_success",
			LessonsLearned: "Festive positivity travels"},
		{Brand: "FairGlow", CampaignName: "Brighter You", Platform: "Instagram",
			ViralityScore: 70, BacklashOccurred: true, Outcome: "backlash",
			LessonsLearned: "Colorism framing destroyed the brand"},
		{Brand: "SnackCo", CampaignName: "Crunch Time", Platform: "Instagram",
			ViralityScore: 40, BacklashOccurred: false, Outcome: "moderate",
			LessonsLearned: "Plain product posts plateau"},
		{Brand: "TubeBrand", CampaignName: "Long Form", Platform: "YouTube",
			ViralityScore: 90, BacklashOccurred: false, Outcome: "viral_success",
			LessonsLearned: "Depth works on video"},
	}
}

func TestRecommend_StopConditions(t *testing.T) {
	e := NewEngine(nil)
	noAlerts := []models.CulturalAlert{}
	critical := []models.CulturalAlert{{Severity: "critical", Keyword: "fair skin"}}

	tests := []struct {
		name            string
		virality        float64
		backlash        float64
		alerts          []models.CulturalAlert
		perceivedIntent float64
	}{
		{"critical backlash", 95, 85, noAlerts, 50},
		{"critical alert", 80, 10, critical, 50},
		{"highly manipulative intent", 80, 10, noAlerts, -60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Recommend(tt.virality, tt.backlash, tt.alerts, tt.perceivedIntent,
				models.TPBScores{BehavioralIntention: 80}, models.Sentiment{})
			assert.Equal(t, "stop", got.Status)
			assert.Equal(t, "Do Not Post", got.Action)
		})
	}
}

func TestRecommend_StopBeatsVirality(t *testing.T) {
	e := NewEngine(nil)

	got := e.Recommend(95, 85, nil, 50, models.TPBScores{BehavioralIntention: 90}, models.Sentiment{})

	assert.Equal(t, "stop", got.Status)
	assert.Equal(t, "Critical backlash risk detected (85%). Major content revision required before posting.", got.Message)
}

func TestRecommend_CautionConditions(t *testing.T) {
	e := NewEngine(nil)

	tests := []struct {
		name            string
		virality        float64
		backlash        float64
		alerts          []models.CulturalAlert
		perceivedIntent float64
	}{
		{"elevated backlash", 80, 40, nil, 50},
		{"high severity alert", 80, 10, []models.CulturalAlert{{Severity: "high", Keyword: "border"}}, 50},
		{"weak intent", 80, 10, nil, 5},
		{"low virality with alerts", 40, 10, []models.CulturalAlert{{Severity: "medium"}}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Recommend(tt.virality, tt.backlash, tt.alerts, tt.perceivedIntent,
				models.TPBScores{BehavioralIntention: 60}, models.Sentiment{})
			assert.Equal(t, "caution", got.Status)
			assert.Equal(t, "Review Required", got.Action)
		})
	}
}

func TestRecommend_GoTiers(t *testing.T) {
	e := NewEngine(nil)
	tpb := models.TPBScores{BehavioralIntention: 80}

	excellent := e.Recommend(80, 10, nil, 60, tpb, models.Sentiment{Polarity: 0.6})
	assert.Equal(t, "go", excellent.Status)
	assert.Equal(t, "Excellent - Post Now!", excellent.Action)
	assert.Empty(t, excellent.Suggestions)

	good := e.Recommend(60, 20, nil, 60, tpb, models.Sentiment{})
	assert.Equal(t, "go", good.Status)
	assert.Equal(t, "Good to Post", good.Action)

	safe := e.Recommend(40, 10, nil, 60, tpb, models.Sentiment{})
	assert.Equal(t, "go", safe.Status)
	assert.Equal(t, "Safe to Post", safe.Action)
}

func TestRecommend_Reasoning(t *testing.T) {
	e := NewEngine(nil)

	got := e.Recommend(80, 10, nil, 60, models.TPBScores{BehavioralIntention: 80},
		models.Sentiment{Polarity: 0.6})

	assert.Contains(t, got.Reasoning, "High TPB behavioral intention (80%) indicates strong sharing likelihood")
	assert.Contains(t, got.Reasoning, "Positive perceived intent (60) suggests authentic messaging")
	assert.Contains(t, got.Reasoning, "No cultural sensitivity issues detected")
	assert.Contains(t, got.Reasoning, "Very high virality potential (80%)")
	assert.Contains(t, got.Reasoning, "Low backlash risk (10%)")
	assert.Contains(t, got.Reasoning, "Strong positive sentiment detected")
}

func TestRecommend_Suggestions(t *testing.T) {
	e := NewEngine(nil)
	alerts := []models.CulturalAlert{
		{Severity: "critical", Keyword: "fair skin", Category: "Colorism"},
		{Severity: "high", Keyword: "border", Category: "Geopolitical"},
	}

	got := e.Recommend(40, 75, alerts, -30, models.TPBScores{Attitude: 40},
		models.Sentiment{Polarity: -0.2, Subjectivity: 0.8})

	assert.Equal(t, "stop", got.Status)
	assert.Contains(t, got.Suggestions, "Remove or rephrase critical triggers: fair skin")
	assert.Contains(t, got.Suggestions, "Consider revising high-risk references: border")
	assert.Contains(t, got.Suggestions, "Remove skin tone references and focus on inclusive beauty standards")
	assert.Contains(t, got.Suggestions, "Avoid geopolitical topics that may polarize audiences")
	assert.Contains(t, got.Suggestions, "Increase authenticity by adding genuine storytelling or user testimonials")
	assert.Contains(t, got.Suggestions, "Reframe negative messaging with positive or solution-oriented language")
	assert.Contains(t, got.Suggestions, "Balance subjective claims with objective facts or data")
	assert.Contains(t, got.Suggestions, "Enhance emotional appeal to improve audience attitude toward sharing")
	assert.Contains(t, got.Suggestions, "Consider major content revision or alternative messaging approach")
}

func TestFindSimilarCampaigns(t *testing.T) {
	e := NewEngine(testCampaigns())

	// High virality, low backlash: the clean viral campaign should rank first.
	got := e.FindSimilarCampaigns("Instagram", 10, 80)
	require.Len(t, got, 3)
	assert.Equal(t, "GlowCo", got[0].Brand)
	assert.Equal(t, "Festival of Shine", got[0].Campaign)
	assert.Equal(t, "Festive positivity travels", got[0].Lesson)

	// High backlash prediction surfaces the backlash precedent first.
	risky := e.FindSimilarCampaigns("Instagram", 80, 70)
	require.NotEmpty(t, risky)
	assert.Equal(t, "FairGlow", risky[0].Brand)
}

func TestFindSimilarCampaigns_PlatformFilter(t *testing.T) {
	e := NewEngine(testCampaigns())

	got := e.FindSimilarCampaigns("YouTube", 10, 80)
	require.Len(t, got, 1)
	assert.Equal(t, "TubeBrand", got[0].Brand)

	assert.Nil(t, e.FindSimilarCampaigns("LinkedIn", 10, 80))
}
