package cultural

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/spacesedan/adpulse/internal/models"
)

const dateLayout = "2006-01-02"

type compiledTrigger struct {
	trigger models.CulturalTrigger
	pattern *regexp.Regexp
}

// Detector matches campaign text against the trigger lexicon and festival
// calendar. Datasets are read-only after construction, so one Detector
// serves concurrent requests.
type Detector struct {
	triggers  []compiledTrigger
	festivals []models.Festival
}

func NewDetector(triggers []models.CulturalTrigger, festivals []models.Festival) *Detector {
	compiled := make([]compiledTrigger, 0, len(triggers))
	for _, trigger := range triggers {
		keyword := strings.ToLower(trigger.Keyword)
		if keyword == "" {
			continue
		}
		compiled = append(compiled, compiledTrigger{
			trigger: trigger,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`),
		})
	}
	return &Detector{triggers: compiled, festivals: festivals}
}

// DetectTriggers returns compound-pattern alerts first, then word-boundary
// lexicon matches, then alerts derived from visual sensitivity flags.
func (d *Detector) DetectTriggers(text string, visual *models.VisualSignal) []models.CulturalAlert {
	if strings.TrimSpace(text) == "" && visual == nil {
		return nil
	}

	lower := strings.ToLower(text)

	alerts := DetectCompoundPatterns(text)

	for _, ct := range d.triggers {
		if ct.pattern.MatchString(lower) {
			alerts = append(alerts, models.CulturalAlert{
				Keyword:    ct.trigger.Keyword,
				Category:   ct.trigger.Category,
				Severity:   ct.trigger.Severity,
				RiskWeight: ct.trigger.RiskWeight,
				Message:    ct.trigger.AlertMessage,
				Source:     "text",
			})
		}
	}

	if visual != nil {
		for _, flag := range visual.SensitivityFlags {
			alerts = append(alerts, models.CulturalAlert{
				Keyword:    flag.Element,
				Category:   flag.Category,
				Severity:   flag.Severity,
				RiskWeight: visualRiskWeight(flag.Severity),
				Message:    flag.Message,
				Source:     "image",
			})
		}
	}

	return alerts
}

func visualRiskWeight(severity string) int {
	switch strings.ToLower(severity) {
	case models.SeverityCritical:
		return 40
	case models.SeverityHigh:
		return 30
	case models.SeverityMedium:
		return 20
	case models.SeverityLow:
		return 10
	default:
		return 15
	}
}

// CheckFestivalProximity alerts only when the posting date falls within 7
// days of a festival AND the text carries one of its sensitivity keywords.
// Proximity alone is never an alert; an unparseable date skips the check.
func (d *Detector) CheckFestivalProximity(postingDate, content string) []models.CulturalAlert {
	if postingDate == "" || strings.TrimSpace(content) == "" {
		return nil
	}

	postDate, err := time.Parse(dateLayout, postingDate)
	if err != nil {
		return nil
	}

	lower := strings.ToLower(content)
	var alerts []models.CulturalAlert

	for _, festival := range d.festivals {
		festivalDate, err := time.Parse(dateLayout, festival.Date)
		if err != nil {
			slog.Warn("[CulturalDetector] Skipping festival with invalid date",
				slog.String("festival", festival.FestivalName),
				slog.String("date", festival.Date))
			continue
		}

		daysAway := int(math.Abs(festivalDate.Sub(postDate).Hours() / 24))
		if daysAway > 7 {
			continue
		}

		var conflicts []string
		for _, keyword := range festival.SensitivityKeywords {
			if keyword != "" && strings.Contains(lower, strings.ToLower(keyword)) {
				conflicts = append(conflicts, keyword)
			}
		}
		if len(conflicts) == 0 {
			continue
		}

		severity := models.SeverityHigh
		riskWeight := 25
		if daysAway <= 3 {
			severity = models.SeverityCritical
			riskWeight = 35
		}

		alerts = append(alerts, models.CulturalAlert{
			Keyword:      festival.FestivalName,
			Category:     "Festival",
			Severity:     severity,
			RiskWeight:   riskWeight,
			Message:      festivalMessage(festival.FestivalName, daysAway, conflicts),
			Source:       "festival",
			Festival:     festival.FestivalName,
			FestivalDate: festival.Date,
			DaysAway:     daysAway,
			Conflicts:    conflicts,
		})
	}

	return alerts
}

func festivalMessage(name string, daysAway int, conflicts []string) string {
	return fmt.Sprintf("Posting near %s (%d days away) with potentially sensitive content: %s",
		name, daysAway, strings.Join(conflicts, ", "))
}

// Detect aggregates trigger, festival and visual findings into the SCS
// score: risk-weight sum plus 10 per critical/high finding, clamped to 100.
func (d *Detector) Detect(text, postingDate string, visual *models.VisualSignal) models.CulturalAssessment {
	if strings.TrimSpace(text) == "" {
		return models.CulturalAssessment{Alerts: []models.CulturalAlert{}}
	}

	triggerAlerts := d.DetectTriggers(text, visual)
	festivalAlerts := d.CheckFestivalProximity(postingDate, text)

	totalRisk := 0
	normViolations := 0
	var breakdown models.SeverityBreakdown

	alerts := make([]models.CulturalAlert, 0, len(triggerAlerts)+len(festivalAlerts))
	alerts = append(alerts, triggerAlerts...)
	alerts = append(alerts, festivalAlerts...)

	for _, alert := range alerts {
		totalRisk += alert.RiskWeight
		switch strings.ToLower(alert.Severity) {
		case models.SeverityCritical:
			breakdown.Critical++
			normViolations++
		case models.SeverityHigh:
			breakdown.High++
			normViolations++
		case models.SeverityMedium:
			breakdown.Medium++
		case models.SeverityLow:
			breakdown.Low++
		}
	}

	score := math.Min(float64(totalRisk+normViolations*10), 100)

	return models.CulturalAssessment{
		SCSScore:        round2(score),
		TriggersFound:   len(triggerAlerts),
		FestivalAlerts:  len(festivalAlerts),
		TotalRiskWeight: totalRisk,
		NormViolations:  normViolations,
		Alerts:          alerts,
		Severity:        breakdown,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
