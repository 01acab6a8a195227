package textsignals

import (
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

// MeasureMessageClarity penalizes abstract vocabulary, questions and
// open-ended prompts. Higher is clearer.
func MeasureMessageClarity(text string) models.ClarityMetrics {
	if strings.TrimSpace(text) == "" {
		return models.ClarityMetrics{ClarityScore: 100}
	}

	cleaned := CleanText(text)
	words := strings.Fields(cleaned)
	wordCount := len(words)
	if wordCount == 0 {
		return models.ClarityMetrics{ClarityScore: 100}
	}

	lower := strings.ToLower(cleaned)
	abstractCount := len(matchSubstrings(lower, abstractKeywords))
	abstractRatio := float64(abstractCount) / float64(wordCount)

	questionCount := strings.Count(text, "?")
	openEndedCount := len(matchSubstrings(lower, openEndedPhrases))

	clarity := 100.0
	clarity -= abstractRatio * 100 * 0.5
	clarity -= float64(questionCount) * 10
	clarity -= float64(openEndedCount) * 15
	clarity = math.Max(clarity, 0)

	return models.ClarityMetrics{
		ClarityScore:        round2(clarity),
		AbstractRatio:       round3(abstractRatio),
		QuestionCount:       questionCount,
		OpenEndedIndicators: openEndedCount,
		WordCount:           wordCount,
	}
}

// MeasureInterpretiveOpenness estimates how much room the text leaves for
// audience interpretation: metaphors, dangling pronouns, subjectivity.
func MeasureInterpretiveOpenness(text string, sentiment models.Sentiment) models.OpennessMetrics {
	if strings.TrimSpace(text) == "" {
		return models.OpennessMetrics{}
	}

	lower := strings.ToLower(CleanText(text))

	metaphorCount := len(matchSubstrings(lower, metaphorIndicators))

	pronounCount := 0
	for _, pronoun := range ambiguousPronouns {
		pronounCount += strings.Count(lower, " "+pronoun+" ")
	}

	openness := float64(metaphorCount) * 15
	openness += math.Min(float64(pronounCount)*5, 30)
	openness += sentiment.Subjectivity * 40
	openness = math.Min(openness, 100)

	return models.OpennessMetrics{
		OpennessScore:           round2(openness),
		MetaphorCount:           metaphorCount,
		AmbiguousPronouns:       pronounCount,
		MultipleInterpretations: sentiment.Subjectivity > 0.6 || metaphorCount > 2,
	}
}
