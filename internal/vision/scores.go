package vision

import (
	"math"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

var (
	strongToneWords   = []string{"strong", "intense", "powerful", "vibrant"}
	moderateToneWords = []string{"moderate", "positive", "warm"}
	subtleToneWords   = []string{"subtle", "calm", "gentle"}

	criticalFlagWords = []string{"colorism", "fair skin", "skin whitening", "religious conflict"}
	highFlagWords     = []string{"religious", "political", "caste", "communal"}
	mediumFlagWords   = []string{"cultural appropriation", "stereotype", "insensitive"}

	skinToneCritical = []string{"only fair", "only light", "lack of diversity", "colorism"}
	skinToneHigh     = []string{"predominantly fair", "mostly light"}

	controversialSymbols = []string{"beef", "pork", "alcohol", "religious conflict"}
)

// VisualEMC scores the emotional-moral weight of the imagery: emotion count
// up to 40, tone intensity up to 30, cultural framing up to 30.
func VisualEMC(signal *models.VisualSignal) float64 {
	score := math.Min(float64(len(signal.VisualEmotions))*10, 40)

	tone := strings.ToLower(signal.EmotionalTone)
	switch {
	case containsAny(tone, strongToneWords):
		score += 30
	case containsAny(tone, moderateToneWords):
		score += 20
	case containsAny(tone, subtleToneWords):
		score += 10
	}

	culturalCount := len(signal.CulturalSymbols) + len(signal.FestivalReferences)
	if culturalCount > 0 {
		score += math.Min(float64(culturalCount)*10, 30)
	}

	return math.Min(score, 100)
}

// VisualSCS scores the cultural risk of the imagery from the sensitivity
// flags, skin tone representation and controversial symbols.
func VisualSCS(signal *models.VisualSignal) float64 {
	score := 0.0

	for _, flag := range signal.SensitivityFlags {
		switch flag.Severity {
		case models.SeverityCritical:
			score += 40
		case models.SeverityHigh:
			score += 30
		case models.SeverityMedium:
			score += 20
		default:
			score += 10
		}
	}

	skinTone := strings.ToLower(signal.SkinToneRepresentation)
	if containsAny(skinTone, skinToneCritical) {
		score += 35
	} else if containsAny(skinTone, skinToneHigh) {
		score += 20
	}

	for _, symbol := range signal.CulturalSymbols {
		if containsAny(strings.ToLower(symbol), controversialSymbols) {
			score += 25
		}
	}

	return math.Min(score, 100)
}

// classifyFlags assigns a severity tier to each raw flag string from the
// model so downstream fusion and reporting can weigh them.
func classifyFlags(raw []string) []models.VisualFlag {
	flags := make([]models.VisualFlag, 0, len(raw))
	for _, element := range raw {
		lower := strings.ToLower(element)

		severity := models.SeverityLow
		category := "Visual"
		switch {
		case containsAny(lower, criticalFlagWords):
			severity = models.SeverityCritical
			category = "Colorism"
			if strings.Contains(lower, "religious conflict") {
				category = "Religious"
			}
		case containsAny(lower, highFlagWords):
			severity = models.SeverityHigh
			category = "Religious"
			if strings.Contains(lower, "political") {
				category = "Geopolitical"
			} else if strings.Contains(lower, "caste") || strings.Contains(lower, "communal") {
				category = "Communal"
			}
		case containsAny(lower, mediumFlagWords):
			severity = models.SeverityMedium
			category = "Cultural"
		}

		flags = append(flags, models.VisualFlag{
			Element:  element,
			Category: category,
			Severity: severity,
			Message:  "Visual content flagged: " + element,
		})
	}
	return flags
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
