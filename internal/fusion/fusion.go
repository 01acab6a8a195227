// Package fusion merges text-derived and image-derived signals for requests
// that carry both modalities.
package fusion

import (
	"math"
	"sort"

	"github.com/spacesedan/adpulse/internal/models"
)

const (
	textEMCWeight   = 0.6
	visualEMCWeight = 0.4
)

// Fuse combines the two modalities: EMC is a weighted average, SCS takes the
// worst case of either side, emotions are unioned. A nil visual signal
// passes the text signals through unchanged in text_only mode.
func Fuse(textEMC, textSCS float64, textEmotions []string, visual *models.VisualSignal) models.FusedSignals {
	if visual == nil {
		return models.FusedSignals{
			Mode:     "text_only",
			EMCScore: textEMC,
			SCSScore: textSCS,
			Emotions: textEmotions,
		}
	}

	combinedEMC := textEMC*textEMCWeight + visual.VisualEMCScore*visualEMCWeight

	combinedSCS := math.Max(textSCS, visual.VisualSCSScore)
	primarySource := "text"
	if visual.VisualSCSScore > textSCS {
		primarySource = "visual"
	}

	emotions, agreement := unionWithAgreement(textEmotions, visual.VisualEmotions)

	flags := make([]string, 0, len(visual.SensitivityFlags))
	for _, flag := range visual.SensitivityFlags {
		flags = append(flags, flag.Element)
	}
	sort.Strings(flags)

	symbols := append([]string(nil), visual.CulturalSymbols...)
	sort.Strings(symbols)

	return models.FusedSignals{
		Mode:              "multimodal",
		EMCScore:          math.Round(combinedEMC*100) / 100,
		SCSScore:          combinedSCS,
		Emotions:          emotions,
		CulturalSymbols:   symbols,
		SensitivityFlags:  flags,
		PrimaryRiskSource: primarySource,
		EmotionAgreement:  agreement,
		HasVisual:         true,
	}
}

// unionWithAgreement returns the sorted union of both emotion sets and the
// |intersection| / |union| agreement ratio.
func unionWithAgreement(text, visual []string) ([]string, float64) {
	seen := make(map[string]int, len(text)+len(visual))
	for _, e := range text {
		seen[e] |= 1
	}
	for _, e := range visual {
		seen[e] |= 2
	}

	union := make([]string, 0, len(seen))
	both := 0
	for e, mask := range seen {
		union = append(union, e)
		if mask == 3 {
			both++
		}
	}
	sort.Strings(union)

	if len(union) == 0 {
		return union, 0
	}
	return union, math.Round(float64(both)/float64(len(union))*1000) / 1000
}
