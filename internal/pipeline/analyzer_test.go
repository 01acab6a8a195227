package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/models"
	"github.com/spacesedan/adpulse/internal/vision"
)

type fakeVision struct {
	signal    *models.VisualSignal
	signalErr error
	ocr       *vision.OCRResult
	ocrErr    error
}

func (f *fakeVision) AnalyzeImage(ctx context.Context, imageData string) (*models.VisualSignal, error) {
	return f.signal, f.signalErr
}

func (f *fakeVision) ExtractText(ctx context.Context, imageData string) (*vision.OCRResult, error) {
	return f.ocr, f.ocrErr
}

func testStore() *datasets.Store {
	return &datasets.Store{
		Triggers: []models.CulturalTrigger{
			{Keyword: "fair skin", Category: "Colorism", Severity: "critical", RiskWeight: 40,
				AlertMessage: "Fair skin references trigger colorism backlash"},
		},
		Festivals: []models.Festival{
			{FestivalName: "Diwali", Date: "2025-10-20",
				SensitivityKeywords: []string{"alcohol", "beef"}},
		},
		Campaigns: []models.HistoricalCampaign{
			{Brand: "GlowCo", CampaignName: "Festival of Shine", Platform: "Instagram",
				ViralityScore: 85, Outcome: "viral_success", LessonsLearned: "Positivity travels"},
		},
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AnalysisRequest
		wantErr error
	}{
		{"no content", models.AnalysisRequest{Platform: "Instagram"}, ErrNoContent},
		{"bad platform", models.AnalysisRequest{Caption: "hi", Platform: "orkut"}, ErrInvalidPlatform},
		{"missing platform", models.AnalysisRequest{Caption: "hi"}, ErrInvalidPlatform},
		{"case insensitive platform", models.AnalysisRequest{Caption: "hi", Platform: "INSTAGRAM"}, nil},
		{"image only is content", models.AnalysisRequest{ImageBase64: "abc", Platform: "tiktok"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAnalyzeCampaign_TextOnly(t *testing.T) {
	a := New(testStore(), nil)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		RequestID: "req-1",
		Caption:   "Celebrate the festive season with your family! So much joy and pride.",
		Platform:  "Instagram",
	})
	require.NoError(t, err)

	assert.Equal(t, AnalysisTypeTextOnly, resp.AnalysisType)
	assert.Nil(t, resp.ImageAnalysis)
	assert.Empty(t, resp.ExtractedText)
	assert.NotEmpty(t, resp.Recommendation.Status)
	assert.NotEmpty(t, resp.Recommendation.Reasoning)
	assert.Contains(t, resp.EmotionalMoralContent.Emotions, "joy")
	assert.Equal(t, "go", resp.Recommendation.Status)
}

func TestAnalyzeCampaign_TriggerDrivesStop(t *testing.T) {
	a := New(testStore(), nil)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Caption:  "Get fair skin fast with our new cream!",
		Platform: "Instagram",
	})
	require.NoError(t, err)

	assert.Equal(t, "stop", resp.Recommendation.Status)
	assert.NotEmpty(t, resp.CulturalAlerts)
	assert.Greater(t, resp.SocioCulturalSensitivity.SCSScore, 0.0)
}

func TestAnalyzeCampaign_FestivalProximity(t *testing.T) {
	a := New(testStore(), nil)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Caption:     "Enjoy alcohol responsibly this season",
		Platform:    "Instagram",
		PostingDate: "2025-10-19",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.SocioCulturalSensitivity.FestivalProximity)
	assert.Equal(t, "Diwali", resp.SocioCulturalSensitivity.FestivalProximity.Festival)
}

func TestAnalyzeCampaign_Multimodal(t *testing.T) {
	fake := &fakeVision{
		signal: &models.VisualSignal{
			VisualEmotions: []string{"joy"},
			EmotionalTone:  "warm and positive",
			VisualEMCScore: 50,
			VisualSCSScore: 10,
		},
	}
	a := New(testStore(), fake)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Caption:     "A lovely celebration",
		Platform:    "Instagram",
		ImageBase64: "aW1hZ2U=",
	})
	require.NoError(t, err)

	assert.Equal(t, AnalysisTypeMultimodal, resp.AnalysisType)
	require.NotNil(t, resp.ImageAnalysis)
	assert.Equal(t, 50.0, resp.ImageAnalysis.VisualEMCScore)
}

func TestAnalyzeCampaign_ImageOnly(t *testing.T) {
	fake := &fakeVision{
		signal: &models.VisualSignal{VisualEmotions: []string{"joy"}},
		ocr:    &vision.OCRResult{ExtractedText: "Celebrate with joy"},
	}
	a := New(testStore(), fake)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Platform:    "TikTok",
		ImageBase64: "aW1hZ2U=",
	})
	require.NoError(t, err)

	assert.Equal(t, AnalysisTypeImageOnly, resp.AnalysisType)
	assert.Equal(t, "Celebrate with joy", resp.ExtractedText)
	assert.Contains(t, resp.EmotionalMoralContent.Emotions, "joy")
}

func TestAnalyzeCampaign_ImageOnlyWithoutVision(t *testing.T) {
	a := New(testStore(), nil)

	_, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Platform:    "TikTok",
		ImageBase64: "aW1hZ2U=",
	})
	assert.Error(t, err)
}

func TestAnalyzeCampaign_VisionFailureDegrades(t *testing.T) {
	fake := &fakeVision{signalErr: errors.New("model timeout")}
	a := New(testStore(), fake)

	resp, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{
		Caption:     "A lovely celebration",
		Platform:    "Instagram",
		ImageBase64: "aW1hZ2U=",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ImageAnalysis)
	assert.Equal(t, AnalysisTypeMultimodal, resp.AnalysisType)
}

func TestAnalyzeCampaign_InvalidRequest(t *testing.T) {
	a := New(testStore(), nil)

	_, err := a.AnalyzeCampaign(context.Background(), models.AnalysisRequest{Platform: "Instagram"})
	assert.ErrorIs(t, err, ErrNoContent)
}
