// Package outcomes predicts virality, backlash, exposure intensity and
// ad-fatigue for one campaign from TPB and content signals.
package outcomes

import (
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

// Platform multipliers for virality, based on each platform's amplification
// mechanics.
var viralityPlatformMultipliers = map[string]float64{
	"instagram": 1.05,
	"tiktok":    1.10,
	"youtube":   1.00,
	"twitter":   1.05,
	"facebook":  1.03,
	"linkedin":  0.95,
}

// PredictVirality scales behavioral intention to 70% and layers sentiment
// and emotion boosts before the platform multiplier and final clamp.
func PredictVirality(behavioralIntention float64, emotions []string,
	sentiment models.Sentiment, platform string) models.ViralityDetail {

	base := behavioralIntention * 0.7

	emotionBoost := math.Min(float64(len(emotions))*3, 15)

	var polarityBoost float64
	if math.Abs(sentiment.Polarity) > 0.5 {
		polarityBoost = 8
	}

	var positiveBoost float64
	if sentiment.Polarity > 0.3 {
		positiveBoost = 8
		if sentiment.Polarity > 0.6 {
			positiveBoost = 12
		}
	}

	var negativePenalty float64
	if sentiment.Polarity < -0.3 {
		negativePenalty = 10
		if sentiment.Polarity < -0.6 {
			negativePenalty = 18
		}
	}

	multiplier, ok := viralityPlatformMultipliers[strings.ToLower(strings.TrimSpace(platform))]
	if !ok {
		multiplier = 1.0
	}

	score := (base + emotionBoost + polarityBoost + positiveBoost - negativePenalty) * multiplier
	score = clamp(score, 0, 100)

	return models.ViralityDetail{
		ViralityScore:      round2(score),
		BaseScore:          round2(base),
		EmotionBoost:       emotionBoost,
		EmotionCount:       len(emotions),
		PolarityBoost:      polarityBoost,
		PositiveBoost:      positiveBoost,
		NegativePenalty:    negativePenalty,
		PlatformMultiplier: multiplier,
		Platform:           platform,
		Category:           fiveTierCategory(score),
	}
}

// PredictBacklash is intent-centred: perceived intent carries 40% as the
// primary mediator, cultural risk 30%, excessive EMC and negative sentiment
// 15% each. Three or more concurrent risk factors escalate the sum by 1.3
// before the clamp.
func PredictBacklash(perceivedIntent, scsScore float64, alerts []models.CulturalAlert,
	sentiment models.Sentiment, emcScore float64) models.BacklashDetail {

	culturalRisk := 0.0
	criticalCount := 0
	highCount := 0
	for _, alert := range alerts {
		culturalRisk += float64(alert.RiskWeight)
		switch strings.ToLower(alert.Severity) {
		case models.SeverityCritical:
			criticalCount++
		case models.SeverityHigh:
			highCount++
		}
	}

	severityMultiplier := 1.0
	if criticalCount > 0 {
		severityMultiplier = 1.5
	} else if highCount > 0 {
		severityMultiplier = 1.3
	}

	culturalRisk *= severityMultiplier
	culturalComponent := math.Min((culturalRisk/150.0)*100, 100) * 0.30

	var intentContribution float64
	switch {
	case perceivedIntent < -50:
		intentContribution = 100
	case perceivedIntent < -20:
		intentContribution = 80
	case perceivedIntent < 0:
		intentContribution = 60
	case perceivedIntent < 20:
		intentContribution = 40
	default:
		intentContribution = 20
	}
	intentComponent := intentContribution * 0.40

	var emcContribution float64
	if emcScore > 70 {
		emcContribution = ((emcScore - 70) / 30) * 100
	}
	emcComponent := emcContribution * 0.15

	var sentimentContribution float64
	if sentiment.Polarity < 0 {
		sentimentContribution = math.Abs(sentiment.Polarity) * 100
	}
	sentimentComponent := sentimentContribution * 0.15

	backlash := culturalComponent + intentComponent + emcComponent + sentimentComponent

	riskFactors := 0
	if culturalRisk > 30 {
		riskFactors++
	}
	if perceivedIntent < -20 {
		riskFactors++
	}
	if emcScore > 70 {
		riskFactors++
	}
	if sentiment.Polarity < -0.3 {
		riskFactors++
	}
	if criticalCount > 0 {
		riskFactors++
	}

	compoundEffect := riskFactors >= 3
	if compoundEffect {
		backlash *= 1.3
	}
	backlash = math.Min(backlash, 100)

	return models.BacklashDetail{
		BacklashRisk:       round2(backlash),
		CulturalComponent:  round2(culturalComponent),
		IntentComponent:    round2(intentComponent),
		EMCComponent:       round2(emcComponent),
		SentimentComponent: round2(sentimentComponent),
		SeverityMultiplier: severityMultiplier,
		CompoundEffect:     compoundEffect,
		RiskFactors:        riskFactors,
		CriticalAlerts:     criticalCount,
		HighAlerts:         highCount,
		AlertCount:         len(alerts),
		Category:           backlashCategory(backlash),
	}
}

// ExposureIntensity weighs voluntary sharing (60%) against controversy-driven
// discussion (40%) and labels the crossing pattern at the 60 threshold.
func ExposureIntensity(viralityScore, backlashRisk float64) models.ExposureDetail {
	viralityComponent := viralityScore * 0.6
	backlashComponent := backlashRisk * 0.4
	exposure := math.Min(viralityComponent+backlashComponent, 100)

	var pattern string
	switch {
	case viralityScore > 60 && backlashRisk > 60:
		pattern = "controversial_viral"
	case viralityScore > 60:
		pattern = "positive_viral"
	case backlashRisk > 60:
		pattern = "controversial"
	default:
		pattern = "normal"
	}

	return models.ExposureDetail{
		ExposureIntensity: round2(exposure),
		ViralityComponent: round2(viralityComponent),
		BacklashComponent: round2(backlashComponent),
		Pattern:           pattern,
		Category:          fiveTierCategory(exposure),
	}
}

// PredictAdFatigue starts at 30 and adds length, hashtag and subjectivity
// penalties plus 30% of exposure intensity. Hashtags are counted on the raw
// caption.
func PredictAdFatigue(exposureIntensity float64, caption string, sentiment models.Sentiment) models.FatigueDetail {
	base := 30.0

	wordCount := len(strings.Fields(caption))
	var lengthPenalty float64
	switch {
	case wordCount > 100:
		lengthPenalty = 25
	case wordCount > 50:
		lengthPenalty = 15
	}

	hashtagCount := strings.Count(caption, "#")
	var hashtagPenalty float64
	if hashtagCount > 5 {
		hashtagPenalty = float64(hashtagCount-5) * 2
	}

	var subjectivityPenalty float64
	if sentiment.Subjectivity > 0.7 {
		subjectivityPenalty = 20
	}

	exposureFactor := exposureIntensity * 0.3

	fatigue := math.Min(base+lengthPenalty+hashtagPenalty+subjectivityPenalty+exposureFactor, 100)

	return models.FatigueDetail{
		AdFatigueRisk:       round2(fatigue),
		BaseRisk:            base,
		LengthPenalty:       lengthPenalty,
		HashtagPenalty:      hashtagPenalty,
		SubjectivityPenalty: subjectivityPenalty,
		ExposureFactor:      round2(exposureFactor),
		WordCount:           wordCount,
		HashtagCount:        hashtagCount,
		Category:            backlashCategory(fatigue),
	}
}

// PredictAll runs all four outcome predictions and integer-rounds the
// report values.
func PredictAll(behavioralIntention float64, emotions []string, sentiment models.Sentiment,
	platform string, perceivedIntent, scsScore float64, alerts []models.CulturalAlert,
	caption string, emcScore float64) models.OutcomePrediction {

	virality := PredictVirality(behavioralIntention, emotions, sentiment, platform)
	backlash := PredictBacklash(perceivedIntent, scsScore, alerts, sentiment, emcScore)
	exposure := ExposureIntensity(virality.ViralityScore, backlash.BacklashRisk)
	fatigue := PredictAdFatigue(exposure.ExposureIntensity, caption, sentiment)

	return models.OutcomePrediction{
		ViralityScore:     int(math.Round(virality.ViralityScore)),
		BacklashRisk:      int(math.Round(backlash.BacklashRisk)),
		ExposureIntensity: int(math.Round(exposure.ExposureIntensity)),
		AdFatigueRisk:     int(math.Round(fatigue.AdFatigueRisk)),
		Virality:          virality,
		Backlash:          backlash,
		Exposure:          exposure,
		Fatigue:           fatigue,
	}
}

func fiveTierCategory(score float64) string {
	switch {
	case score >= 75:
		return "very_high"
	case score >= 60:
		return "high"
	case score >= 45:
		return "moderate"
	case score >= 30:
		return "low"
	default:
		return "very_low"
	}
}

func backlashCategory(score float64) string {
	switch {
	case score >= 70:
		return "critical"
	case score >= 50:
		return "high"
	case score >= 30:
		return "moderate"
	case score >= 15:
		return "low"
	default:
		return "very_low"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
