package models

type Sentiment struct {
	Polarity        float64 `json:"polarity"`
	Subjectivity    float64 `json:"subjectivity"`
	Positive        float64 `json:"positive"`
	Negative        float64 `json:"negative"`
	Neutral         float64 `json:"neutral"`
	Label           string  `json:"label"`
	LexiconPolarity float64 `json:"lexicon_polarity"`
	VADERCompound   float64 `json:"vader_compound"`
}

type MoralFraming struct {
	HasMoralFraming  bool     `json:"has_moral_framing"`
	Categories       []string `json:"moral_categories"`
	KeywordCount     int      `json:"moral_keyword_count"`
	AlignmentScore   float64  `json:"alignment_score"`
	DetectedKeywords []string `json:"detected_keywords"`
}

type MoralViolation struct {
	Type     string   `json:"type"`
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords"`
	Contexts []string `json:"contexts"`
}

type MoralViolations struct {
	Detected   bool             `json:"violations_detected"`
	Violations []MoralViolation `json:"violations"`
	TotalScore float64          `json:"total_violation_score"`
}

type EmotionalIntensity struct {
	ArousalLevel         float64 `json:"arousal_level"`
	EmotionCount         int     `json:"emotion_count"`
	WeightedEmotionScore float64 `json:"weighted_emotion_score"`
	IntensityScore       float64 `json:"intensity_score"`
}

type EMCScore struct {
	Score              float64 `json:"emc_score"`
	SentimentComponent float64 `json:"sentiment_component"`
	EmotionComponent   float64 `json:"emotion_component"`
	MoralComponent     float64 `json:"moral_component"`
	ArousalComponent   float64 `json:"arousal_component"`
	ViolationEscalated bool    `json:"violation_escalated"`
}

type ClarityMetrics struct {
	ClarityScore        float64 `json:"clarity_score"`
	AbstractRatio       float64 `json:"abstract_ratio"`
	QuestionCount       int     `json:"question_count"`
	OpenEndedIndicators int     `json:"open_ended_indicators"`
	WordCount           int     `json:"word_count"`
}

type OpennessMetrics struct {
	OpennessScore           float64 `json:"openness_score"`
	MetaphorCount           int     `json:"metaphor_count"`
	AmbiguousPronouns       int     `json:"ambiguous_pronouns"`
	MultipleInterpretations bool    `json:"multiple_interpretations"`
}

type NAMScore struct {
	Score             float64         `json:"nam_score"`
	AbstractComponent float64         `json:"abstract_component"`
	QuestionComponent float64         `json:"question_component"`
	MetaphorComponent float64         `json:"metaphor_component"`
	ClarityComponent  float64         `json:"clarity_component"`
	Clarity           ClarityMetrics  `json:"clarity_metrics"`
	Openness          OpennessMetrics `json:"openness_metrics"`
}

// ContentSignal is the full set of text-derived signals for one request.
// Built once per analysis and never mutated afterwards.
type ContentSignal struct {
	CleanedText     string             `json:"cleaned_text"`
	Sentiment       Sentiment          `json:"sentiment"`
	Emotions        []string           `json:"emotions"`
	MoralFraming    MoralFraming       `json:"moral_framing"`
	MoralViolations MoralViolations    `json:"moral_violations"`
	Intensity       EmotionalIntensity `json:"emotional_intensity"`
	EMC             EMCScore           `json:"emc"`
	NAM             NAMScore           `json:"nam"`
}
