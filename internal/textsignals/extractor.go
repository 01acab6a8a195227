package textsignals

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/adpulse/internal/models"
)

// Extractor turns raw campaign text into the typed signal set consumed by
// the rest of the pipeline. It is safe for concurrent use; the embedded memo
// caches never change a computed value.
type Extractor struct {
	vader          *govader.SentimentIntensityAnalyzer
	sentimentCache *memoCache[models.Sentiment]
	emotionCache   *memoCache[[]string]
}

func NewExtractor() *Extractor {
	return &Extractor{
		vader:          govader.NewSentimentIntensityAnalyzer(),
		sentimentCache: newMemoCache[models.Sentiment](maxCacheSize),
		emotionCache:   newMemoCache[[]string](maxCacheSize),
	}
}

// Analyze runs the full text pass: sentiment, emotions, moral framing and
// violations, intensity, EMC and NAM.
func (e *Extractor) Analyze(text string) models.ContentSignal {
	sentiment := e.AnalyzeSentiment(text)
	emotions := e.DetectEmotions(text)
	framing := DetectMoralFraming(text)
	violations := DetectMoralViolations(text)
	intensity := MeasureEmotionalIntensity(sentiment, emotions)

	return models.ContentSignal{
		CleanedText:     CleanText(text),
		Sentiment:       sentiment,
		Emotions:        emotions,
		MoralFraming:    framing,
		MoralViolations: violations,
		Intensity:       intensity,
		EMC:             ComputeEMC(sentiment, emotions, framing, violations, intensity),
		NAM:             e.ComputeNAM(text, sentiment),
	}
}

// AnalyzeSentiment blends the explicit-lexicon estimator (0.4) with VADER
// (0.6). VADER's positive/negative/neutral breakdown is authoritative for
// the percentage fields since it is tuned for short informal text.
func (e *Extractor) AnalyzeSentiment(text string) models.Sentiment {
	if strings.TrimSpace(text) == "" {
		return models.Sentiment{Neutral: 100, Label: "Neutral"}
	}

	key := cacheKey(text)
	if cached, ok := e.sentimentCache.get(key); ok {
		return cached
	}

	cleaned := CleanText(text)
	lexPolarity, lexSubjectivity := scoreWithLexicon(cleaned)
	vs := e.vader.PolarityScores(cleaned)

	polarity := lexPolarity*0.4 + vs.Compound*0.6

	label := "Neutral"
	if polarity > 0.05 {
		label = "Positive"
	} else if polarity < -0.05 {
		label = "Negative"
	}

	result := models.Sentiment{
		Polarity:        round3(polarity),
		Subjectivity:    round3(lexSubjectivity),
		Positive:        round1(vs.Positive * 100),
		Negative:        round1(vs.Negative * 100),
		Neutral:         round1(vs.Neutral * 100),
		Label:           label,
		LexiconPolarity: round3(lexPolarity),
		VADERCompound:   round3(vs.Compound),
	}

	e.sentimentCache.put(key, result)
	return result
}

// DetectEmotions does independent per-category substring matching; the first
// keyword hit marks the category present and moves on.
func (e *Extractor) DetectEmotions(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	key := cacheKey(text)
	if cached, ok := e.emotionCache.get(key); ok {
		return cached
	}

	lower := strings.ToLower(text)
	detected := []string{}
	for _, category := range emotionCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				detected = append(detected, category.name)
				break
			}
		}
	}

	e.emotionCache.put(key, detected)
	return detected
}

// MeasureEmotionalIntensity combines arousal (polarity magnitude plus half
// the subjectivity, saturating at 1) with a weighted emotion count.
func MeasureEmotionalIntensity(sentiment models.Sentiment, emotions []string) models.EmotionalIntensity {
	arousal := math.Min(math.Abs(sentiment.Polarity)+sentiment.Subjectivity*0.5, 1.0)

	var weighted float64
	for _, emotion := range emotions {
		w, ok := emotionWeights[emotion]
		if !ok {
			w = 1.0
		}
		weighted += w
	}
	normalized := math.Min((weighted/6.0)*100, 100)

	return models.EmotionalIntensity{
		ArousalLevel:         round3(arousal),
		EmotionCount:         len(emotions),
		WeightedEmotionScore: round2(weighted),
		IntensityScore:       round2(arousal*60 + normalized*0.4),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
