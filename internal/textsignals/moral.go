package textsignals

import (
	"math"
	"regexp"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

var moralKeywordPatterns = compileMoralPatterns()

func compileMoralPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(moralCategories))
	for _, category := range moralCategories {
		compiled := make([]*regexp.Regexp, 0, len(category.keywords))
		for _, keyword := range category.keywords {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(keyword)+`\b`))
		}
		patterns[category.name] = compiled
	}
	return patterns
}

// DetectMoralFraming finds moral-language categories via word-boundary
// matching and scores alignment against the market's value hierarchy,
// normalized against four categories at the top weight.
func DetectMoralFraming(text string) models.MoralFraming {
	if strings.TrimSpace(text) == "" {
		return models.MoralFraming{Categories: []string{}, DetectedKeywords: []string{}}
	}

	lower := strings.ToLower(text)
	categories := []string{}
	keywords := []string{}
	total := 0

	for _, category := range moralCategories {
		found := false
		for i, pattern := range moralKeywordPatterns[category.name] {
			if pattern.MatchString(lower) {
				if !found {
					categories = append(categories, category.name)
					found = true
				}
				keywords = append(keywords, category.keywords[i])
				total++
			}
		}
	}

	var alignment float64
	if len(categories) > 0 {
		var weightedSum float64
		for _, cat := range categories {
			w, ok := moralCategoryWeights[cat]
			if !ok {
				w = 1.0
			}
			weightedSum += w
		}
		alignment = math.Min((weightedSum/(4*1.5))*100, 100)
	}

	if len(keywords) > 10 {
		keywords = keywords[:10]
	}

	return models.MoralFraming{
		HasMoralFraming:  total > 0,
		Categories:       categories,
		KeywordCount:     total,
		AlignmentScore:   round2(alignment),
		DetectedKeywords: keywords,
	}
}

// DetectMoralViolations fires a rule only when a violation keyword and a
// contextual framing term co-occur.
func DetectMoralViolations(text string) models.MoralViolations {
	if strings.TrimSpace(text) == "" {
		return models.MoralViolations{Violations: []models.MoralViolation{}}
	}

	lower := strings.ToLower(text)
	violations := []models.MoralViolation{}
	var total float64

	for _, rule := range moralViolationRules {
		keywordsFound := matchSubstrings(lower, rule.keywords)
		contextsFound := matchSubstrings(lower, rule.contexts)

		if len(keywordsFound) == 0 || len(contextsFound) == 0 {
			continue
		}

		if len(keywordsFound) > 3 {
			keywordsFound = keywordsFound[:3]
		}
		if len(contextsFound) > 3 {
			contextsFound = contextsFound[:3]
		}

		violations = append(violations, models.MoralViolation{
			Type:     rule.name,
			Score:    rule.score,
			Keywords: keywordsFound,
			Contexts: contextsFound,
		})
		total += rule.score
	}

	return models.MoralViolations{
		Detected:   len(violations) > 0,
		Violations: violations,
		TotalScore: total,
	}
}

func matchSubstrings(lower string, terms []string) []string {
	found := []string{}
	for _, term := range terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
