package textsignals

import "strings"

// Explicit-lexicon polarity/subjectivity estimator. Complements the VADER
// pass in sentiment.go: VADER is tuned for short social text, this walker
// scores plain evaluative vocabulary with negation and intensifier handling.

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

var polarityLexicon = map[string]lexiconEntry{
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"wonderful":   {1.0, 1.0},
	"fantastic":   {0.4, 0.9},
	"brilliant":   {0.9, 0.9},
	"beautiful":   {0.85, 1.0},
	"gorgeous":    {0.8, 1.0},
	"stunning":    {0.7, 0.9},
	"perfect":     {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"nice":        {0.6, 1.0},
	"lovely":      {0.7, 0.9},
	"happy":       {0.8, 1.0},
	"joyful":      {0.8, 0.9},
	"delighted":   {0.85, 0.9},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.9},
	"enjoy":       {0.4, 0.5},
	"fun":         {0.3, 0.2},
	"exciting":    {0.35, 0.7},
	"excited":     {0.35, 0.75},
	"proud":       {0.65, 0.8},
	"blessed":     {0.7, 0.9},
	"grateful":    {0.6, 0.8},
	"inspiring":   {0.5, 0.6},
	"empowering":  {0.5, 0.6},
	"success":     {0.55, 0.4},
	"successful":  {0.55, 0.5},
	"win":         {0.6, 0.5},
	"winning":     {0.6, 0.6},
	"victory":     {0.6, 0.5},
	"fresh":       {0.3, 0.4},
	"glowing":     {0.4, 0.6},
	"radiant":     {0.5, 0.7},
	"confident":   {0.45, 0.6},
	"strong":      {0.4, 0.45},
	"smart":       {0.5, 0.6},
	"easy":        {0.45, 0.8},
	"free":        {0.4, 0.8},
	"safe":        {0.5, 0.5},
	"special":     {0.35, 0.7},
	"unique":      {0.35, 0.7},
	"incredible":  {0.9, 0.9},
	"delicious":   {0.7, 0.8},
	"sweet":       {0.35, 0.65},
	"warm":        {0.4, 0.6},
	"kind":        {0.6, 0.9},
	"genuine":     {0.4, 0.5},
	"authentic":   {0.4, 0.5},
	"celebrate":   {0.45, 0.5},
	"celebration": {0.45, 0.5},

	"bad":          {-0.7, 0.65},
	"terrible":     {-1.0, 1.0},
	"horrible":     {-1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"worst":        {-1.0, 0.3},
	"worse":        {-0.5, 0.5},
	"ugly":         {-0.7, 0.9},
	"disgusting":   {-0.9, 0.95},
	"gross":        {-0.6, 0.8},
	"hate":         {-0.8, 0.9},
	"hated":        {-0.8, 0.9},
	"sad":          {-0.5, 1.0},
	"unhappy":      {-0.6, 0.8},
	"angry":        {-0.6, 0.9},
	"furious":      {-0.8, 0.9},
	"annoying":     {-0.5, 0.8},
	"boring":       {-0.55, 0.8},
	"fail":         {-0.5, 0.4},
	"failure":      {-0.55, 0.5},
	"problem":      {-0.3, 0.3},
	"problems":     {-0.3, 0.3},
	"barrier":      {-0.25, 0.25},
	"obstacle":     {-0.3, 0.3},
	"struggle":     {-0.4, 0.45},
	"suffering":    {-0.6, 0.6},
	"pain":         {-0.5, 0.5},
	"painful":      {-0.6, 0.7},
	"shame":        {-0.55, 0.7},
	"shameful":     {-0.6, 0.8},
	"embarrassing": {-0.5, 0.8},
	"inferior":     {-0.5, 0.6},
	"worthless":    {-0.8, 0.8},
	"cheap":        {-0.3, 0.5},
	"fake":         {-0.5, 0.6},
	"wrong":        {-0.5, 0.5},
	"unfair":       {-0.5, 0.6},
	"unacceptable": {-0.6, 0.7},
	"offensive":    {-0.6, 0.7},
	"dangerous":    {-0.5, 0.5},
	"risky":        {-0.35, 0.5},
	"scared":       {-0.5, 0.8},
	"afraid":       {-0.5, 0.7},
	"worried":      {-0.4, 0.7},
	"dull":         {-0.4, 0.7},
	"weak":         {-0.4, 0.5},
	"poor":         {-0.4, 0.6},
	"dirty":        {-0.4, 0.6},
	"broken":       {-0.4, 0.5},
	"disappointed": {-0.6, 0.75},
	"rejected":     {-0.5, 0.5},
	"rejection":    {-0.5, 0.5},

	"okay":     {0.1, 0.4},
	"fine":     {0.2, 0.5},
	"average":  {-0.05, 0.4},
	"ordinary": {-0.1, 0.5},
	"new":      {0.1, 0.4},
	"old":      {-0.05, 0.2},
	"real":     {0.15, 0.35},
	"simple":   {0.1, 0.35},
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "cant": true, "dont": true, "doesnt": true,
	"didnt": true, "isnt": true, "wasnt": true, "wont": true,
	"without": true, "hardly": true,
}

var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5,
	"absolutely": 1.4, "totally": 1.3, "so": 1.2, "super": 1.3,
	"truly": 1.25, "deeply": 1.25,
	"slightly": 0.7, "somewhat": 0.8, "barely": 0.6, "bit": 0.8,
}

// scoreWithLexicon averages matched-word polarity and subjectivity. A
// negator halves and flips the next matched word; an intensifier scales it.
func scoreWithLexicon(text string) (polarity, subjectivity float64) {
	var polSum, subSum float64
	matched := 0

	boost := 1.0
	negated := false
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(raw, ".,!?;:'\"()[]")
		word = strings.ReplaceAll(word, "'", "")
		if word == "" {
			continue
		}
		if negators[word] {
			negated = true
			continue
		}
		if b, ok := intensifiers[word]; ok {
			boost = b
			continue
		}
		entry, ok := polarityLexicon[word]
		if !ok {
			continue
		}
		p := entry.polarity * boost
		if negated {
			p = -0.5 * p
		}
		polSum += p
		subSum += entry.subjectivity
		matched++
		boost = 1.0
		negated = false
	}

	if matched == 0 {
		return 0, 0
	}
	polarity = clampFloat(polSum/float64(matched), -1, 1)
	subjectivity = clampFloat(subSum/float64(matched), 0, 1)
	return polarity, subjectivity
}
