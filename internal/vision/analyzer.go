// Package vision analyzes campaign images with an OpenAI vision model and
// scores the visual emotional and cultural signals locally.
package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"

	"github.com/spacesedan/adpulse/internal/models"
)

const analysisPrompt = `Analyze this marketing image for the Indian market. Provide a detailed analysis in JSON format with the following structure:

{
  "visual_emotions": ["list of emotions detected: joy, pride, nostalgia, celebration, inspiration, etc."],
  "cultural_symbols": ["list of cultural/religious symbols: diya, rangoli, temple, mosque, etc."],
  "sensitivity_flags": ["list of potential sensitivity issues: colorism, religious imagery, political references, etc."],
  "text_overlay": "any text visible in the image",
  "brand_elements": ["list of brand elements: logo, product, packaging, etc."],
  "festival_references": ["list of festival references: Diwali, Eid, Holi, etc."],
  "skin_tone_representation": "description of skin tone representation and diversity",
  "emotional_tone": "overall emotional tone of the imagery",
  "visual_style": "description of visual style: modern, traditional, minimalist, etc.",
  "color_palette": ["dominant colors in the image"],
  "composition": "description of image composition and layout"
}

Focus on identifying:
1. Emotional tone and visual emotions
2. Cultural and religious symbols that may be sensitive in India
3. Skin tone representation and potential colorism indicators
4. Festival or cultural references
5. Any text overlays or brand messaging
6. Potential sensitivity triggers for Indian audiences

Provide only the JSON response, no additional text.`

const ocrPrompt = `Extract ALL text visible in this image. This includes:
- Headlines and titles
- Body text and captions
- Brand names and slogans
- Hashtags and mentions
- Call-to-action text
- Any other readable text

Return the extracted text in JSON format:
{
  "extracted_text": "The complete text found in the image, preserving line breaks where appropriate",
  "text_elements": [
    {"type": "headline", "text": "Main headline text"},
    {"type": "body", "text": "Body text content"},
    {"type": "cta", "text": "Call to action text"},
    {"type": "hashtag", "text": "#hashtag"},
    {"type": "brand", "text": "Brand name"}
  ],
  "language": "primary language of the text (e.g., English, Hindi, Hinglish)",
  "text_confidence": "high/medium/low - confidence in text extraction accuracy"
}

If no text is visible in the image, return:
{
  "extracted_text": "",
  "text_elements": [],
  "language": "none",
  "text_confidence": "high"
}

Provide only the JSON response, no additional text.`

// visualAnalysisWire mirrors the JSON shape the model is asked to emit.
type visualAnalysisWire struct {
	VisualEmotions         []string `json:"visual_emotions"`
	CulturalSymbols        []string `json:"cultural_symbols"`
	SensitivityFlags       []string `json:"sensitivity_flags"`
	TextOverlay            string   `json:"text_overlay"`
	BrandElements          []string `json:"brand_elements"`
	FestivalReferences     []string `json:"festival_references"`
	SkinToneRepresentation string   `json:"skin_tone_representation"`
	EmotionalTone          string   `json:"emotional_tone"`
	VisualStyle            string   `json:"visual_style"`
	ColorPalette           []string `json:"color_palette"`
	Composition            string   `json:"composition"`
}

type OCRElement struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type OCRResult struct {
	ExtractedText  string       `json:"extracted_text"`
	TextElements   []OCRElement `json:"text_elements"`
	Language       string       `json:"language"`
	TextConfidence string       `json:"text_confidence"`
}

type Analyzer struct {
	client *openai.Client
	model  string
}

func NewAnalyzer(client *openai.Client) *Analyzer {
	return &Analyzer{
		client: client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// AnalyzeImage sends the image to the vision model, parses the structured
// response and derives the visual EMC and SCS scores.
func (a *Analyzer) AnalyzeImage(ctx context.Context, imageData string) (*models.VisualSignal, error) {
	raw, err := a.completeWithImage(ctx, analysisPrompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("vision analysis failed: %w", err)
	}

	var wire visualAnalysisWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("failed to parse vision response: %w", err)
	}

	flags := classifyFlags(wire.SensitivityFlags)

	signal := &models.VisualSignal{
		VisualEmotions:         lowerAll(wire.VisualEmotions),
		CulturalSymbols:        wire.CulturalSymbols,
		SensitivityFlags:       flags,
		TextOverlay:            wire.TextOverlay,
		EmotionalTone:          wire.EmotionalTone,
		SkinToneRepresentation: wire.SkinToneRepresentation,
		FestivalReferences:     wire.FestivalReferences,
	}
	signal.VisualEMCScore = VisualEMC(signal)
	signal.VisualSCSScore = VisualSCS(signal)

	slog.Info("[ImageAnalyzer] Image analyzed",
		slog.Int("emotions", len(signal.VisualEmotions)),
		slog.Int("sensitivity_flags", len(signal.SensitivityFlags)),
		slog.Float64("visual_emc", signal.VisualEMCScore),
		slog.Float64("visual_scs", signal.VisualSCSScore))

	return signal, nil
}

// ExtractText runs OCR over the image via the vision model.
func (a *Analyzer) ExtractText(ctx context.Context, imageData string) (*OCRResult, error) {
	raw, err := a.completeWithImage(ctx, ocrPrompt, imageData)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	var result OCRResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Model sometimes answers with bare text instead of JSON.
		return &OCRResult{
			ExtractedText:  raw,
			Language:       "unknown",
			TextConfidence: "low",
		}, nil
	}

	return &result, nil
}

// completeWithImage calls the chat API with a text prompt and an inline image,
// retrying transient failures and empty responses.
func (a *Analyzer) completeWithImage(ctx context.Context, prompt, imageData string) (string, error) {
	imageURL := toDataURI(imageData)

	var lastErr error
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		chatCompletion, err := a.client.Chat.Completions.New(ctx,
			openai.ChatCompletionNewParams{
				Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
					openai.UserMessageParts(
						openai.TextPart(prompt),
						openai.ImagePart(imageURL),
					),
				}),
				Model:       openai.F(a.model),
				Temperature: openai.Float(0.2),
			})
		if err != nil {
			lastErr = err
			slog.Warn("[ImageAnalyzer] Vision API call failed, retrying",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			time.Sleep(2 * time.Second)
			continue
		}

		if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
			lastErr = fmt.Errorf("empty response from vision model")
			slog.Warn("[ImageAnalyzer] Vision model returned empty response, retrying",
				slog.Int("attempt", attempt))
			time.Sleep(2 * time.Second)
			continue
		}

		return cleanModelResponse(chatCompletion.Choices[0].Message.Content), nil
	}

	return "", fmt.Errorf("vision call failed after %d attempts: %w", maxRetries, lastErr)
}

// toDataURI wraps bare base64 payloads; payloads that already carry a data
// URI prefix pass through unchanged.
func toDataURI(imageData string) string {
	if strings.HasPrefix(imageData, "data:") {
		return imageData
	}
	return "data:image/jpeg;base64," + imageData
}

func cleanModelResponse(response string) string {
	response = strings.TrimSpace(response)

	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimSuffix(response, "```")

	response = strings.ReplaceAll(response, "“", `"`) // Left curly quote
	response = strings.ReplaceAll(response, "”", `"`) // Right curly quote

	return strings.TrimSpace(response)
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
