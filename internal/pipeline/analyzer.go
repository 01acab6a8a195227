// Package pipeline orchestrates one campaign analysis end to end: text
// signals, cultural sensitivity, multimodal fusion, perceived intent, TPB
// scoring, outcome prediction and the final recommendation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/adpulse/internal/cultural"
	"github.com/spacesedan/adpulse/internal/datasets"
	"github.com/spacesedan/adpulse/internal/fusion"
	"github.com/spacesedan/adpulse/internal/intent"
	"github.com/spacesedan/adpulse/internal/models"
	"github.com/spacesedan/adpulse/internal/outcomes"
	"github.com/spacesedan/adpulse/internal/recommend"
	"github.com/spacesedan/adpulse/internal/textsignals"
	"github.com/spacesedan/adpulse/internal/tpb"
	"github.com/spacesedan/adpulse/internal/vision"
)

var (
	ErrNoContent       = errors.New("at least one of caption or image_base64 is required")
	ErrInvalidPlatform = errors.New("platform must be one of: Instagram, YouTube, TikTok, Twitter")
)

const (
	AnalysisTypeTextOnly   = "text_only"
	AnalysisTypeImageOnly  = "image_only"
	AnalysisTypeMultimodal = "multimodal"

	// Stand-in text when an image carries no extractable words.
	imageOnlyFallbackText = "Image content"
)

var supportedPlatforms = map[string]bool{
	"instagram": true,
	"youtube":   true,
	"tiktok":    true,
	"twitter":   true,
}

// VisionAnalyzer is the vision collaborator contract; nil disables image
// analysis entirely.
type VisionAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageData string) (*models.VisualSignal, error)
	ExtractText(ctx context.Context, imageData string) (*vision.OCRResult, error)
}

type Analyzer struct {
	extractor *textsignals.Extractor
	detector  *cultural.Detector
	engine    *recommend.Engine
	vision    VisionAnalyzer
}

func New(store *datasets.Store, visionAnalyzer VisionAnalyzer) *Analyzer {
	return &Analyzer{
		extractor: textsignals.NewExtractor(),
		detector:  cultural.NewDetector(store.Triggers, store.Festivals),
		engine:    recommend.NewEngine(store.Campaigns),
		vision:    visionAnalyzer,
	}
}

// VisionEnabled reports whether a vision collaborator is configured.
func (a *Analyzer) VisionEnabled() bool {
	return a.vision != nil
}

// ValidateRequest enforces the request contract: some content, and a
// supported platform.
func ValidateRequest(req models.AnalysisRequest) error {
	if strings.TrimSpace(req.Caption) == "" && strings.TrimSpace(req.ImageBase64) == "" {
		return ErrNoContent
	}
	if !supportedPlatforms[strings.ToLower(strings.TrimSpace(req.Platform))] {
		return ErrInvalidPlatform
	}
	return nil
}

func analysisType(req models.AnalysisRequest) string {
	hasCaption := strings.TrimSpace(req.Caption) != ""
	hasImage := strings.TrimSpace(req.ImageBase64) != ""
	switch {
	case hasCaption && hasImage:
		return AnalysisTypeMultimodal
	case hasImage:
		return AnalysisTypeImageOnly
	default:
		return AnalysisTypeTextOnly
	}
}

// AnalyzeCampaign runs the full pipeline for one request. Image analysis
// failures degrade to text-only analysis rather than failing the request.
func (a *Analyzer) AnalyzeCampaign(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResponse, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	mode := analysisType(req)
	text := req.Caption

	var visual *models.VisualSignal
	var extractedText string

	if req.ImageBase64 != "" && a.vision != nil {
		signal, err := a.vision.AnalyzeImage(ctx, req.ImageBase64)
		if err != nil {
			slog.Warn("[Pipeline] Image analysis failed, continuing with text signals only",
				slog.String("request_id", req.RequestID),
				slog.String("error", err.Error()))
		} else {
			visual = signal
		}

		if mode == AnalysisTypeImageOnly {
			ocr, err := a.vision.ExtractText(ctx, req.ImageBase64)
			if err != nil {
				slog.Warn("[Pipeline] Text extraction failed",
					slog.String("request_id", req.RequestID),
					slog.String("error", err.Error()))
			} else {
				extractedText = ocr.ExtractedText
			}

			text = strings.TrimSpace(extractedText)
			if text == "" {
				text = imageOnlyFallbackText
			}
		}
	} else if req.ImageBase64 != "" && mode == AnalysisTypeImageOnly {
		return nil, fmt.Errorf("image analysis is not available for image-only requests")
	}

	signal := a.extractor.Analyze(text)

	// Cultural trigger matching runs on text alone; visual findings reach
	// the risk scores through fusion.
	assessment := a.detector.Detect(text, req.PostingDate, nil)

	fused := fusion.Fuse(signal.EMC.Score, assessment.SCSScore, signal.Emotions, visual)

	intentResult := intent.AssessIntent(fused.EMCScore, signal.NAM.Score, fused.SCSScore, signal.Sentiment, text)

	tpbResult := tpb.Compute(signal.Sentiment, fused.EMCScore, intentResult.IntentScore,
		signal.NAM.Score, fused.Emotions, req.Platform, req.Influencer)

	prediction := outcomes.PredictAll(tpbResult.BehavioralIntention, fused.Emotions, signal.Sentiment,
		req.Platform, intentResult.IntentScore, fused.SCSScore, assessment.Alerts, req.Caption, fused.EMCScore)

	recommendation := a.engine.Recommend(prediction.Virality.ViralityScore, prediction.Backlash.BacklashRisk,
		assessment.Alerts, intentResult.IntentScore, tpbResult.TPBScores, signal.Sentiment)

	similar := a.engine.FindSimilarCampaigns(req.Platform,
		prediction.Backlash.BacklashRisk, prediction.Virality.ViralityScore)

	response := &models.AnalysisResponse{
		AnalysisType: mode,
		EmotionalMoralContent: models.EmotionalMoralContent{
			EMCScore:     fused.EMCScore,
			Emotions:     fused.Emotions,
			MoralFraming: signal.MoralFraming.HasMoralFraming,
			ArousalLevel: signal.Intensity.ArousalLevel,
		},
		NarrativeAmbiguity: models.NarrativeAmbiguity{
			NAMScore:             signal.NAM.Score,
			Clarity:              signal.NAM.Clarity.ClarityScore,
			InterpretiveOpenness: signal.NAM.Openness.OpennessScore,
		},
		SocioCulturalSensitivity: models.SocioCulturalSensitivity{
			SCSScore:          fused.SCSScore,
			TriggersFound:     assessment.TriggersFound,
			FestivalProximity: firstFestivalAlert(assessment.Alerts),
		},
		PerceivedIntent: models.PerceivedIntentSummary{
			IntentScore:      intentResult.IntentScore,
			Authenticity:     intentResult.Authenticity,
			ManipulationRisk: intentResult.ManipulationRisk,
			Interpretation:   intentResult.Interpretation,
			Confidence:       intentResult.Confidence,
		},
		TPBScores:         tpbResult.TPBScores,
		ViralityScore:     prediction.ViralityScore,
		BacklashRisk:      prediction.BacklashRisk,
		AdFatigueRisk:     prediction.AdFatigueRisk,
		ExposureIntensity: prediction.ExposureIntensity,
		CulturalAlerts:    assessment.Alerts,
		Sentiment:         signal.Sentiment,
		Recommendation:    recommendation,
		SimilarCampaigns:  similar,
		ImageAnalysis:     visual,
		ExtractedText:     extractedText,
	}

	slog.Info("[Pipeline] Campaign analyzed",
		slog.String("request_id", req.RequestID),
		slog.String("analysis_type", mode),
		slog.String("recommendation", recommendation.Status),
		slog.Int("virality", prediction.ViralityScore),
		slog.Int("backlash", prediction.BacklashRisk))

	return response, nil
}

func firstFestivalAlert(alerts []models.CulturalAlert) *models.CulturalAlert {
	for i := range alerts {
		if alerts[i].Source == "festival" {
			return &alerts[i]
		}
	}
	return nil
}
