// Package intent derives the perceived-intent mediator: how likely audiences
// are to attribute authentic versus manipulative motives to the creator.
package intent

import (
	"fmt"
	"math"

	"github.com/spacesedan/adpulse/internal/models"
)

// AuthenticityScore blends positive sentiment (30%), low cultural
// sensitivity (40%) and EMC appropriateness (30%). EMC in [40,70] reads as
// engaging-but-genuine and scores full marks; either side of the band decays
// linearly.
func AuthenticityScore(sentiment models.Sentiment, scsScore, emcScore float64) float64 {
	positiveSentiment := ((sentiment.Polarity + 1) / 2) * 100
	sentimentComponent := positiveSentiment * 0.30

	lowSCSComponent := (100 - scsScore) * 0.40

	var emcAppropriateness float64
	switch {
	case emcScore >= 40 && emcScore <= 70:
		emcAppropriateness = 100
	case emcScore < 40:
		emcAppropriateness = (emcScore / 40) * 100
	default:
		emcAppropriateness = math.Max(0, 100-((emcScore-70)/30)*100)
	}
	emcComponent := emcAppropriateness * 0.30

	authenticity := sentimentComponent + lowSCSComponent + emcComponent
	return round2(clamp(authenticity, 0, 100))
}

// ManipulationRisk is the base manipulation estimate before pattern
// penalties: high SCS (40%), excessive EMC above 70 (30%), subjectivity
// (30%).
func ManipulationRisk(scsScore, emcScore float64, sentiment models.Sentiment) float64 {
	scsComponent := scsScore * 0.40

	var excessiveEMC float64
	if emcScore > 70 {
		excessiveEMC = ((emcScore - 70) / 30) * 100
	}
	emcComponent := excessiveEMC * 0.30

	subjectivityComponent := sentiment.Subjectivity * 100 * 0.30

	manipulation := scsComponent + emcComponent + subjectivityComponent
	return round2(clamp(manipulation, 0, 100))
}

// AssessIntent combines authenticity, base manipulation and the pattern
// penalties into the final intent score in [-100, 100].
func AssessIntent(emcScore, namScore, scsScore float64, sentiment models.Sentiment, text string) models.IntentAssessment {
	authenticity := AuthenticityScore(sentiment, scsScore, emcScore)
	manipulation := ManipulationRisk(scsScore, emcScore, sentiment)

	patterns := DetectManipulationPatterns(text, scsScore, sentiment)
	for _, finding := range patterns {
		manipulation += finding.Penalty
	}
	manipulation = math.Min(manipulation, 100)

	intentScore := clamp(authenticity-manipulation, -100, 100)

	category, interpretation := categorize(intentScore)

	ambiguityFactor := "low"
	if namScore > 60 {
		ambiguityFactor = "high"
		interpretation += " (High ambiguity may lead to varied interpretations)"
	} else if namScore > 30 {
		ambiguityFactor = "medium"
	}

	if scsScore > 50 {
		interpretation += " Warning: cultural sensitivity concerns present"
	}
	if len(patterns) > 0 {
		interpretation += fmt.Sprintf(" Warning: %d manipulation pattern(s) detected", len(patterns))
	}

	return models.IntentAssessment{
		IntentScore:      round2(intentScore),
		Authenticity:     authenticity,
		ManipulationRisk: round2(manipulation),
		Category:         category,
		Interpretation:   interpretation,
		AmbiguityFactor:  ambiguityFactor,
		Confidence:       Confidence(namScore, scsScore),
		Patterns:         patterns,
	}
}

func categorize(intentScore float64) (string, string) {
	switch {
	case intentScore >= 50:
		return "authentic", "Highly Authentic - Likely perceived as genuine and values-aligned"
	case intentScore >= 20:
		return "authentic", "Moderately Authentic - Generally perceived as sincere"
	case intentScore >= -20:
		return "neutral", "Neutral - Mixed signals, interpretation varies by audience"
	case intentScore >= -50:
		return "manipulative", "Moderately Manipulative - May be perceived as sales-focused"
	default:
		return "manipulative", "Highly Manipulative - Likely perceived as insincere or exploitative"
	}
}

// Confidence in the assessment drops as ambiguity or cultural sensitivity
// rises: uncertainty = 0.6 NAM + 0.4 SCS.
func Confidence(namScore, scsScore float64) string {
	uncertainty := namScore*0.6 + scsScore*0.4
	switch {
	case uncertainty < 30:
		return "high"
	case uncertainty < 60:
		return "medium"
	default:
		return "low"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
