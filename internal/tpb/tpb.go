// Package tpb implements the Theory of Planned Behaviour model: attitude,
// subjective norms and perceived control feed a weighted behavioral
// intention, the likelihood that audiences share or engage.
package tpb

import (
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

// Platform multipliers for subjective norms, reflecting each platform's
// social signaling strength.
var platformMultipliers = map[string]float64{
	"instagram": 1.3,
	"tiktok":    1.4,
	"youtube":   1.0,
	"twitter":   1.2,
	"facebook":  1.2,
	"linkedin":  1.1,
}

// Pride and nostalgia resonate strongly with collective identity in the
// target market.
var cultureEmotionBoosts = map[string]float64{
	"pride":     10,
	"nostalgia": 10,
}

var positiveEmotions = map[string]bool{
	"joy":         true,
	"inspiration": true,
	"humor":       true,
}

// Attitude = 0.5 normalized polarity + 0.3 EMC + 0.2 normalized intent,
// plus fixed emotion bonuses, capped at 100.
func Attitude(sentiment models.Sentiment, emcScore, intentScore float64, emotions []string) models.AttitudeDetail {
	sentimentComponent := ((sentiment.Polarity + 1) / 2) * 100 * 0.5
	emcComponent := emcScore * 0.3
	intentComponent := ((intentScore + 100) / 2) * 0.2

	var emotionBoost float64
	for _, emotion := range emotions {
		if boost, ok := cultureEmotionBoosts[emotion]; ok {
			emotionBoost += boost
		} else if positiveEmotions[emotion] {
			emotionBoost += 5
		}
	}

	attitude := math.Min(sentimentComponent+emcComponent+intentComponent+emotionBoost, 100)

	return models.AttitudeDetail{
		Attitude:           round2(attitude),
		SentimentComponent: round2(sentimentComponent),
		EMCComponent:       round2(emcComponent),
		IntentComponent:    round2(intentComponent),
		EmotionBoost:       emotionBoost,
	}
}

// SubjectiveNorms = (50 base + 25 influencer + 10 pride) x platform
// multiplier, capped at 100. Unknown platforms get multiplier 1.0.
func SubjectiveNorms(platform string, influencer bool, emotions []string) models.NormsDetail {
	base := 50.0

	var influencerBoost float64
	if influencer {
		influencerBoost = 25
	}

	var prideBoost float64
	for _, emotion := range emotions {
		if emotion == "pride" {
			prideBoost = 10
			break
		}
	}

	multiplier, ok := platformMultipliers[normalizePlatform(platform)]
	if !ok {
		multiplier = 1.0
	}

	norms := math.Min((base+influencerBoost+prideBoost)*multiplier, 100)

	return models.NormsDetail{
		SubjectiveNorms:    round2(norms),
		BaseScore:          base,
		InfluencerBoost:    influencerBoost,
		PrideBoost:         prideBoost,
		PlatformMultiplier: multiplier,
		Platform:           platform,
	}
}

// PerceivedControl starts at 70 (sharing is easy) and loses 10 for salesy
// subjectivity, 15 for confusing ambiguity and 20 for negative sentiment,
// floored at 0.
func PerceivedControl(sentiment models.Sentiment, namScore float64) models.ControlDetail {
	base := 70.0

	var subjectivityPenalty float64
	if sentiment.Subjectivity > 0.7 {
		subjectivityPenalty = 10
	}

	var ambiguityPenalty float64
	if namScore > 50 {
		ambiguityPenalty = 15
	}

	var sentimentPenalty float64
	if sentiment.Polarity < -0.2 {
		sentimentPenalty = 20
	}

	control := math.Max(base-subjectivityPenalty-ambiguityPenalty-sentimentPenalty, 0)

	return models.ControlDetail{
		PerceivedControl:    round2(control),
		BaseScore:           base,
		SubjectivityPenalty: subjectivityPenalty,
		AmbiguityPenalty:    ambiguityPenalty,
		SentimentPenalty:    sentimentPenalty,
	}
}

// BehavioralIntention = 0.40 attitude + 0.35 norms + 0.25 control.
func BehavioralIntention(attitude, norms, control float64) models.IntentionDetail {
	attitudeComponent := attitude * 0.40
	normsComponent := norms * 0.35
	controlComponent := control * 0.25

	intention := clamp(attitudeComponent+normsComponent+controlComponent, 0, 100)

	category, interpretation := intentionCategory(intention)

	return models.IntentionDetail{
		BehavioralIntention: round2(intention),
		AttitudeComponent:   round2(attitudeComponent),
		NormsComponent:      round2(normsComponent),
		ControlComponent:    round2(controlComponent),
		Category:            category,
		Interpretation:      interpretation,
	}
}

func intentionCategory(score float64) (string, string) {
	switch {
	case score >= 75:
		return "very_high", "Very High - Strong likelihood of sharing and engagement"
	case score >= 60:
		return "high", "High - Good likelihood of sharing and engagement"
	case score >= 45:
		return "moderate", "Moderate - Some sharing and engagement expected"
	case score >= 30:
		return "low", "Low - Limited sharing and engagement expected"
	default:
		return "very_low", "Very Low - Minimal sharing and engagement expected"
	}
}

// Compute runs all four TPB components for one request.
func Compute(sentiment models.Sentiment, emcScore, intentScore, namScore float64,
	emotions []string, platform string, influencer bool) models.TPBScoreSet {

	attitude := Attitude(sentiment, emcScore, intentScore, emotions)
	norms := SubjectiveNorms(platform, influencer, emotions)
	control := PerceivedControl(sentiment, namScore)
	intention := BehavioralIntention(attitude.Attitude, norms.SubjectiveNorms, control.PerceivedControl)

	return models.TPBScoreSet{
		TPBScores: models.TPBScores{
			Attitude:            attitude.Attitude,
			SubjectiveNorms:     norms.SubjectiveNorms,
			PerceivedControl:    control.PerceivedControl,
			BehavioralIntention: intention.BehavioralIntention,
		},
		AttitudeDetail:  attitude,
		NormsDetail:     norms,
		ControlDetail:   control,
		IntentionDetail: intention,
	}
}

func normalizePlatform(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
