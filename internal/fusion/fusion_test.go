package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/adpulse/internal/models"
)

func TestFuse_TextOnlyPassthrough(t *testing.T) {
	emotions := []string{"joy", "pride"}

	got := Fuse(55, 30, emotions, nil)

	assert.Equal(t, "text_only", got.Mode)
	assert.Equal(t, 55.0, got.EMCScore)
	assert.Equal(t, 30.0, got.SCSScore)
	assert.Equal(t, emotions, got.Emotions)
	assert.False(t, got.HasVisual)
}

func TestFuse_WeightedEMC(t *testing.T) {
	visual := &models.VisualSignal{VisualEMCScore: 80}

	got := Fuse(50, 0, nil, visual)

	// 50*0.6 + 80*0.4 = 62
	assert.Equal(t, 62.0, got.EMCScore)
	assert.Equal(t, "multimodal", got.Mode)
	assert.True(t, got.HasVisual)
}

func TestFuse_WorstCaseSCS(t *testing.T) {
	tests := []struct {
		name       string
		textSCS    float64
		visualSCS  float64
		wantSCS    float64
		wantSource string
	}{
		{"text dominates", 70, 40, 70, "text"},
		{"visual dominates", 20, 65, 65, "visual"},
		{"tie keeps text", 50, 50, 50, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fuse(0, tt.textSCS, nil, &models.VisualSignal{VisualSCSScore: tt.visualSCS})
			assert.Equal(t, tt.wantSCS, got.SCSScore)
			assert.Equal(t, tt.wantSource, got.PrimaryRiskSource)
		})
	}
}

func TestFuse_EmotionUnionAndAgreement(t *testing.T) {
	visual := &models.VisualSignal{
		VisualEmotions: []string{"joy", "nostalgia"},
	}

	got := Fuse(0, 0, []string{"joy", "pride"}, visual)

	assert.Equal(t, []string{"joy", "nostalgia", "pride"}, got.Emotions)
	// one shared emotion out of a union of three
	assert.InDelta(t, 0.333, got.EmotionAgreement, 0.001)
}

func TestFuse_NoEmotions(t *testing.T) {
	got := Fuse(0, 0, nil, &models.VisualSignal{})

	assert.Empty(t, got.Emotions)
	assert.Zero(t, got.EmotionAgreement)
}

func TestFuse_FlagAndSymbolFlattening(t *testing.T) {
	visual := &models.VisualSignal{
		CulturalSymbols: []string{"rangoli", "diya"},
		SensitivityFlags: []models.VisualFlag{
			{Element: "religious imagery"},
			{Element: "alcohol"},
		},
	}

	got := Fuse(0, 0, nil, visual)

	assert.Equal(t, []string{"diya", "rangoli"}, got.CulturalSymbols)
	assert.Equal(t, []string{"alcohol", "religious imagery"}, got.SensitivityFlags)
}
