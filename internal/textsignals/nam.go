package textsignals

import (
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

// ComputeNAM scores narrative ambiguity from abstract language (0-30),
// questions and open-ended prompts (0-25), metaphors (0-20), and inverse
// clarity (0-25).
func (e *Extractor) ComputeNAM(text string, sentiment models.Sentiment) models.NAMScore {
	if strings.TrimSpace(text) == "" {
		return models.NAMScore{}
	}

	clarity := MeasureMessageClarity(text)
	openness := MeasureInterpretiveOpenness(text, sentiment)

	abstractComponent := math.Min(clarity.AbstractRatio*100, 100) * 0.30

	questionScore := math.Min(float64(clarity.QuestionCount+clarity.OpenEndedIndicators)/3.0, 1.0) * 100
	questionComponent := questionScore * 0.25

	metaphorScore := math.Min(float64(openness.MetaphorCount)/5.0, 1.0) * 100
	metaphorComponent := metaphorScore * 0.20

	clarityComponent := (100 - clarity.ClarityScore) * 0.25

	score := math.Min(abstractComponent+questionComponent+metaphorComponent+clarityComponent, 100)

	return models.NAMScore{
		Score:             round2(score),
		AbstractComponent: round2(abstractComponent),
		QuestionComponent: round2(questionComponent),
		MetaphorComponent: round2(metaphorComponent),
		ClarityComponent:  round2(clarityComponent),
		Clarity:           clarity,
		Openness:          openness,
	}
}
