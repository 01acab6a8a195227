package intent

import (
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

type manipulationRule struct {
	name       string
	triggers   []string
	companions []string
	penalty    float64
}

// Each rule fires only when a trigger AND a companion term co-occur; the
// companion class differs per rule (promises, urgency, solutions, claimed
// life areas).
var manipulationRules = []manipulationRule{
	{
		name: "insecurity_exploitation",
		triggers: []string{
			"dont let", "stop letting", "hold you back", "holding you back",
			"problem", "issue", "struggle", "suffering",
		},
		companions: []string{
			"transform", "change", "finally", "guaranteed", "secret",
			"solution", "answer", "fix", "cure",
		},
		penalty: 40,
	},
	{
		name: "fear_based_selling",
		triggers: []string{
			"miss out", "left behind", "before its too late", "running out",
			"limited", "last chance", "dont wait", "act now",
		},
		companions: []string{"now", "today", "hurry", "quick", "fast", "immediate"},
		penalty:    35,
	},
	{
		name: "shame_based_marketing",
		triggers: []string{
			"embarrassed", "ashamed", "hide", "ugly", "unattractive",
			"disgusting", "gross", "inferior",
		},
		companions: []string{"finally", "no more", "say goodbye", "never again", "transform"},
		penalty:    45,
	},
	{
		name: "false_causation",
		triggers: []string{
			"because of your", "due to your", "your x is why", "reason you",
			"thats why you", "if only you",
		},
		companions: []string{
			"job", "career", "marriage", "success", "failure", "rejection",
			"relationship", "money", "wealth",
		},
		penalty: 50,
	},
}

const matchedElementsLimit = 5

// DetectManipulationPatterns runs the rule table over the raw text and
// appends the positive-harmful-framing rule: positive spin on culturally
// sensitive content (scs > 50, polarity > 0.3) is itself manipulative.
func DetectManipulationPatterns(text string, scsScore float64, sentiment models.Sentiment) []models.ManipulationFinding {
	findings := []models.ManipulationFinding{}

	if strings.TrimSpace(text) != "" {
		lower := strings.ToLower(text)
		for _, rule := range manipulationRules {
			triggers := matchTerms(lower, rule.triggers)
			companions := matchTerms(lower, rule.companions)
			if len(triggers) == 0 || len(companions) == 0 {
				continue
			}

			matched := append(triggers, companions...)
			if len(matched) > matchedElementsLimit {
				matched = matched[:matchedElementsLimit]
			}

			findings = append(findings, models.ManipulationFinding{
				Pattern: rule.name,
				Penalty: rule.penalty,
				Matched: matched,
			})
		}
	}

	if scsScore > 50 && sentiment.Polarity > 0.3 {
		findings = append(findings, models.ManipulationFinding{
			Pattern: "positive_harmful_framing",
			Penalty: 25,
			Matched: []string{"high_scs_positive_sentiment"},
		})
	}

	return findings
}

func matchTerms(lower string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
