// Package recommend turns the outcome predictions into a go/caution/stop
// decision with reasoning, revision suggestions and historical precedent.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

const similarCampaignLimit = 3

// Engine holds the historical campaign corpus used for precedent matching.
type Engine struct {
	campaigns []models.HistoricalCampaign
}

func NewEngine(campaigns []models.HistoricalCampaign) *Engine {
	return &Engine{campaigns: campaigns}
}

// Recommend applies the decision ladder in strict priority order: stop
// conditions first, then caution, then go, defaulting to caution when no rule
// matches cleanly.
func (e *Engine) Recommend(virality, backlash float64, alerts []models.CulturalAlert,
	perceivedIntent float64, tpb models.TPBScores, sentiment models.Sentiment) models.Recommendation {

	status, action := determineStatus(virality, backlash, alerts, perceivedIntent)

	return models.Recommendation{
		Status:      status,
		Action:      action,
		Message:     buildMessage(status, virality, backlash),
		Reasoning:   buildReasoning(virality, backlash, alerts, perceivedIntent, tpb, sentiment),
		Suggestions: buildSuggestions(status, backlash, alerts, perceivedIntent, sentiment, tpb),
	}
}

func determineStatus(virality, backlash float64, alerts []models.CulturalAlert, perceivedIntent float64) (string, string) {
	hasCritical := hasSeverity(alerts, models.SeverityCritical)
	hasHigh := hasSeverity(alerts, models.SeverityHigh)

	if backlash >= 70 {
		return "stop", "Do Not Post"
	}
	if hasCritical {
		return "stop", "Do Not Post"
	}
	if perceivedIntent < -50 {
		return "stop", "Do Not Post"
	}

	if backlash >= 35 {
		return "caution", "Review Required"
	}
	if hasHigh {
		return "caution", "Review Required"
	}
	if perceivedIntent >= -50 && perceivedIntent < 20 {
		return "caution", "Review Required"
	}
	if virality < 55 && len(alerts) > 0 {
		return "caution", "Review Required"
	}

	if virality >= 70 && backlash < 25 {
		return "go", "Excellent - Post Now!"
	}
	if virality >= 55 && backlash < 35 {
		return "go", "Good to Post"
	}
	if backlash < 35 && !hasCritical && !hasHigh {
		return "go", "Safe to Post"
	}

	return "caution", "Review Required"
}

func buildReasoning(virality, backlash float64, alerts []models.CulturalAlert,
	perceivedIntent float64, tpb models.TPBScores, sentiment models.Sentiment) []string {

	reasoning := []string{}

	bi := tpb.BehavioralIntention
	switch {
	case bi >= 75:
		reasoning = append(reasoning, fmt.Sprintf("High TPB behavioral intention (%.0f%%) indicates strong sharing likelihood", bi))
	case bi >= 50:
		reasoning = append(reasoning, fmt.Sprintf("Moderate TPB behavioral intention (%.0f%%) suggests decent engagement potential", bi))
	case bi < 40:
		reasoning = append(reasoning, fmt.Sprintf("Low TPB behavioral intention (%.0f%%) indicates limited engagement potential", bi))
	}

	switch {
	case perceivedIntent >= 50:
		reasoning = append(reasoning, fmt.Sprintf("Positive perceived intent (%.0f) suggests authentic messaging", perceivedIntent))
	case perceivedIntent >= 0:
		reasoning = append(reasoning, fmt.Sprintf("Neutral perceived intent (%.0f) - content may lack clear authenticity signals", perceivedIntent))
	case perceivedIntent >= -50:
		reasoning = append(reasoning, fmt.Sprintf("Negative perceived intent (%.0f) - risk of being perceived as manipulative", perceivedIntent))
	default:
		reasoning = append(reasoning, fmt.Sprintf("Highly negative perceived intent (%.0f) - likely to be seen as manipulative", perceivedIntent))
	}

	if len(alerts) == 0 {
		reasoning = append(reasoning, "No cultural sensitivity issues detected")
	} else {
		criticalCount := countSeverity(alerts, models.SeverityCritical)
		highCount := countSeverity(alerts, models.SeverityHigh)

		if criticalCount > 0 {
			reasoning = append(reasoning, fmt.Sprintf("%d critical cultural sensitivity alert(s) detected", criticalCount))
		}
		if highCount > 0 {
			reasoning = append(reasoning, fmt.Sprintf("%d high-severity cultural sensitivity alert(s) detected", highCount))
		}
		if criticalCount == 0 && highCount == 0 {
			reasoning = append(reasoning, fmt.Sprintf("%d cultural sensitivity alert(s) detected (medium/low severity)", len(alerts)))
		}
	}

	switch {
	case virality >= 75:
		reasoning = append(reasoning, fmt.Sprintf("Very high virality potential (%.0f%%)", virality))
	case virality >= 60:
		reasoning = append(reasoning, fmt.Sprintf("High virality potential (%.0f%%)", virality))
	case virality < 40:
		reasoning = append(reasoning, fmt.Sprintf("Limited virality potential (%.0f%%)", virality))
	}

	switch {
	case backlash >= 70:
		reasoning = append(reasoning, fmt.Sprintf("Critical backlash risk (%.0f%%) - high likelihood of negative reaction", backlash))
	case backlash >= 50:
		reasoning = append(reasoning, fmt.Sprintf("High backlash risk (%.0f%%) - significant risk of negative reaction", backlash))
	case backlash >= 30:
		reasoning = append(reasoning, fmt.Sprintf("Moderate backlash risk (%.0f%%)", backlash))
	default:
		reasoning = append(reasoning, fmt.Sprintf("Low backlash risk (%.0f%%)", backlash))
	}

	if sentiment.Polarity > 0.5 {
		reasoning = append(reasoning, "Strong positive sentiment detected")
	} else if sentiment.Polarity < -0.3 {
		reasoning = append(reasoning, "Negative sentiment detected - may trigger backlash")
	}

	return reasoning
}

func buildSuggestions(status string, backlash float64, alerts []models.CulturalAlert,
	perceivedIntent float64, sentiment models.Sentiment, tpb models.TPBScores) []string {

	suggestions := []string{}
	if status == "go" {
		return suggestions
	}

	if len(alerts) > 0 {
		criticalKeywords := keywordsBySeverity(alerts, models.SeverityCritical)
		highKeywords := keywordsBySeverity(alerts, models.SeverityHigh)

		if len(criticalKeywords) > 0 {
			suggestions = append(suggestions, "Remove or rephrase critical triggers: "+strings.Join(criticalKeywords, ", "))
		}
		if len(highKeywords) > 0 {
			suggestions = append(suggestions, "Consider revising high-risk references: "+strings.Join(highKeywords, ", "))
		}

		categories := make(map[string]bool, len(alerts))
		for _, alert := range alerts {
			categories[alert.Category] = true
		}
		if categories["Religious"] {
			suggestions = append(suggestions, "Avoid religious references or ensure they are respectful and inclusive")
		}
		if categories["Colorism"] {
			suggestions = append(suggestions, "Remove skin tone references and focus on inclusive beauty standards")
		}
		if categories["Geopolitical"] {
			suggestions = append(suggestions, "Avoid geopolitical topics that may polarize audiences")
		}
	}

	if perceivedIntent < 0 {
		suggestions = append(suggestions,
			"Increase authenticity by adding genuine storytelling or user testimonials",
			"Reduce promotional language and focus on value-driven messaging")
	}

	if sentiment.Polarity < 0 {
		suggestions = append(suggestions, "Reframe negative messaging with positive or solution-oriented language")
	}
	if sentiment.Subjectivity > 0.7 {
		suggestions = append(suggestions, "Balance subjective claims with objective facts or data")
	}

	if tpb.Attitude < 50 {
		suggestions = append(suggestions, "Enhance emotional appeal to improve audience attitude toward sharing")
	}

	if backlash >= 70 {
		suggestions = append(suggestions,
			"Consider major content revision or alternative messaging approach",
			"Test content with focus groups before posting")
	} else if backlash >= 50 {
		suggestions = append(suggestions, "Review content with cultural sensitivity experts")
	}

	return suggestions
}

func buildMessage(status string, virality, backlash float64) string {
	switch status {
	case "stop":
		if backlash >= 70 {
			return fmt.Sprintf("Critical backlash risk detected (%.0f%%). Major content revision required before posting.", backlash)
		}
		return "Critical issues detected. Do not post without addressing cultural sensitivity concerns."
	case "caution":
		if backlash >= 50 {
			return fmt.Sprintf("Moderate to high backlash risk (%.0f%%). Review and revise content before posting.", backlash)
		}
		return "Some concerns detected. Review cultural sensitivity alerts and consider revisions."
	default:
		if virality >= 75 {
			return fmt.Sprintf("Content shows strong viral potential (%.0f%%) with minimal risk. Excellent candidate for posting!", virality)
		}
		if virality >= 60 {
			return fmt.Sprintf("Content shows good viral potential (%.0f%%) with low risk. Safe to post!", virality)
		}
		return "Content is safe to post with minimal risk, though viral potential is moderate."
	}
}

// FindSimilarCampaigns scores platform-matched historical campaigns by how
// well their virality and backlash patterns match the current prediction,
// then returns the top three with lessons learned.
func (e *Engine) FindSimilarCampaigns(platform string, backlash, virality float64) []models.SimilarCampaign {
	var platformCampaigns []models.HistoricalCampaign
	for _, c := range e.campaigns {
		if strings.EqualFold(strings.TrimSpace(c.Platform), strings.TrimSpace(platform)) {
			platformCampaigns = append(platformCampaigns, c)
		}
	}
	if len(platformCampaigns) == 0 {
		return nil
	}

	highVirality := virality >= 60
	highBacklash := backlash >= 50

	type scored struct {
		campaign   models.HistoricalCampaign
		similarity int
	}

	ranked := make([]scored, 0, len(platformCampaigns))
	for _, c := range platformCampaigns {
		similarity := 0
		if (c.ViralityScore >= 60) == highVirality {
			similarity += 50
		}
		campaignHighBacklash := c.BacklashOccurred || strings.EqualFold(c.Outcome, "backlash")
		if campaignHighBacklash == highBacklash {
			similarity += 50
		}
		ranked = append(ranked, scored{campaign: c, similarity: similarity})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})

	limit := similarCampaignLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	similar := make([]models.SimilarCampaign, 0, limit)
	for _, item := range ranked[:limit] {
		similar = append(similar, models.SimilarCampaign{
			Brand:    item.campaign.Brand,
			Campaign: item.campaign.CampaignName,
			Outcome:  item.campaign.Outcome,
			Lesson:   item.campaign.LessonsLearned,
		})
	}
	return similar
}

func hasSeverity(alerts []models.CulturalAlert, severity string) bool {
	for _, alert := range alerts {
		if strings.EqualFold(alert.Severity, severity) {
			return true
		}
	}
	return false
}

func countSeverity(alerts []models.CulturalAlert, severity string) int {
	count := 0
	for _, alert := range alerts {
		if strings.EqualFold(alert.Severity, severity) {
			count++
		}
	}
	return count
}

func keywordsBySeverity(alerts []models.CulturalAlert, severity string) []string {
	var keywords []string
	for _, alert := range alerts {
		if strings.EqualFold(alert.Severity, severity) {
			keywords = append(keywords, alert.Keyword)
		}
	}
	return keywords
}
