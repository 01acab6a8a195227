package cultural

import (
	"fmt"
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

type harmfulPattern struct {
	name       string
	primary    []string
	amplifiers []string
	solutions  []string
	multiplier float64
	baseScore  float64
}

// Compound harmful framings: a primary trigger escalated by an amplifier or
// a proposed "solution". Either companion class alone is enough.
var harmfulPatterns = []harmfulPattern{
	{
		name:    "colorism_discrimination",
		primary: []string{"dark skin", "dusky", "wheatish", "kaali", "dark complexion"},
		amplifiers: []string{
			"hold back", "hold you back", "problem", "barrier", "obstacle",
			"job", "career", "marriage", "success", "confidence",
		},
		solutions: []string{
			"fairness", "whitening", "brightening", "lighter", "fair skin",
			"serum", "cream", "treatment",
		},
		multiplier: 2.5,
		baseScore:  40,
	},
	{
		name:    "colorism_beauty",
		primary: []string{"fair skin", "gori", "white", "light skin", "pale"},
		amplifiers: []string{
			"beautiful", "pretty", "attractive", "gorgeous", "stunning",
			"desirable", "perfect",
		},
		solutions:  []string{"cream", "serum", "treatment", "product"},
		multiplier: 2.0,
		baseScore:  35,
	},
	{
		name:    "body_shaming",
		primary: []string{"fat", "thin", "skinny", "overweight", "underweight", "body"},
		amplifiers: []string{
			"problem", "ugly", "shame", "embarrass", "unattractive",
			"disgusting", "gross",
		},
		solutions:  []string{"lose weight", "gain weight", "slim", "diet", "transform"},
		multiplier: 2.0,
		baseScore:  30,
	},
}

// DetectCompoundPatterns runs the harmful-pattern rules. The escalation
// factor saturates at 2, so risk = base x multiplier x min(hits, 2).
func DetectCompoundPatterns(text string) []models.CulturalAlert {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var alerts []models.CulturalAlert

	for _, pattern := range harmfulPatterns {
		primaryFound := false
		for _, primary := range pattern.primary {
			if strings.Contains(lower, primary) {
				primaryFound = true
				break
			}
		}
		if !primaryFound {
			continue
		}

		amplifiersFound := containsAll(lower, pattern.amplifiers)
		solutionsFound := containsAll(lower, pattern.solutions)
		if len(amplifiersFound) == 0 && len(solutionsFound) == 0 {
			continue
		}

		compoundFactor := math.Min(float64(len(amplifiersFound)+len(solutionsFound)), 2)
		score := pattern.baseScore * pattern.multiplier * compoundFactor

		alerts = append(alerts, models.CulturalAlert{
			Keyword:    titleWords(strings.ReplaceAll(pattern.name, "_", " ")),
			Category:   "Compound Pattern",
			Severity:   models.SeverityCritical,
			RiskWeight: int(math.Round(score)),
			Message:    fmt.Sprintf("Harmful compound pattern detected: %s", strings.ReplaceAll(pattern.name, "_", " ")),
			Source:     "compound_detection",
			Amplifiers: amplifiersFound,
			Solutions:  solutionsFound,
		})
	}

	return alerts
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func containsAll(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
