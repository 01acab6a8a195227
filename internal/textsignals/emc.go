package textsignals

import (
	"math"

	"github.com/spacesedan/adpulse/internal/models"
)

// ComputeEMC scores emotional-moral content from four components:
//
//	sentiment intensity 0-40, emotion count 0-15, moral blend 0-25,
//	arousal 0-20
//
// A violation total above 20 escalates the sum by 1.3 before the clamp.
func ComputeEMC(sentiment models.Sentiment, emotions []string, framing models.MoralFraming,
	violations models.MoralViolations, intensity models.EmotionalIntensity) models.EMCScore {

	sentimentComponent := math.Abs(sentiment.Polarity) * 40

	emotionComponent := math.Min((float64(len(emotions))/7.0)*15, 15)

	// Moral blend: keyword density and value alignment (40%) against the
	// normalized violation total (60%), scaled into the 0-25 band.
	keywordScore := math.Min((float64(framing.KeywordCount)/10.0)*100, 100)
	moralKeywordComponent := keywordScore*0.6 + framing.AlignmentScore*0.4
	normalizedViolations := math.Min((violations.TotalScore/140.0)*100, 100)
	moralComponent := (moralKeywordComponent*0.4 + normalizedViolations*0.6) * 0.25

	arousalComponent := intensity.ArousalLevel * 20

	score := sentimentComponent + emotionComponent + moralComponent + arousalComponent

	escalated := violations.TotalScore > 20
	if escalated {
		score *= 1.3
	}
	score = math.Min(score, 100)

	return models.EMCScore{
		Score:              round2(score),
		SentimentComponent: round2(sentimentComponent),
		EmotionComponent:   round2(emotionComponent),
		MoralComponent:     round2(moralComponent),
		ArousalComponent:   round2(arousalComponent),
		ViolationEscalated: escalated,
	}
}
