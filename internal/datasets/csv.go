package datasets

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

const (
	triggersFile  = "cultural_triggers.csv"
	festivalsFile = "festival_calendar.csv"
	campaignsFile = "historical_campaigns.csv"
)

// readCSV loads a CSV file into header-keyed rows. A missing file is not an
// error; callers treat an empty result as "regenerate".
func readCSV(path string, requiredFields []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("[Datasets] File not found", slog.String("path", path))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, field := range requiredFields {
		if _, ok := index[field]; !ok {
			slog.Warn("[Datasets] Missing required field",
				slog.String("path", path),
				slog.String("field", field))
			return nil, nil
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for name, i := range index {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func LoadTriggersCSV(dataDir string) ([]models.CulturalTrigger, error) {
	rows, err := readCSV(filepath.Join(dataDir, triggersFile),
		[]string{"keyword", "category", "alert_message", "severity", "risk_weight"})
	if err != nil {
		return nil, err
	}

	triggers := make([]models.CulturalTrigger, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row["keyword"]) == "" {
			continue
		}
		riskWeight, err := strconv.Atoi(strings.TrimSpace(row["risk_weight"]))
		if err != nil {
			riskWeight = 0
		}
		triggers = append(triggers, models.CulturalTrigger{
			Keyword:      row["keyword"],
			Category:     row["category"],
			AlertMessage: row["alert_message"],
			Severity:     strings.ToLower(row["severity"]),
			RiskWeight:   riskWeight,
		})
	}
	return triggers, nil
}

func LoadFestivalsCSV(dataDir string) ([]models.Festival, error) {
	rows, err := readCSV(filepath.Join(dataDir, festivalsFile),
		[]string{"festival_name", "date", "sensitivity_keywords", "description"})
	if err != nil {
		return nil, err
	}

	festivals := make([]models.Festival, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row["festival_name"]) == "" {
			continue
		}
		festivals = append(festivals, models.Festival{
			FestivalName:        row["festival_name"],
			Date:                row["date"],
			SensitivityKeywords: splitKeywords(row["sensitivity_keywords"]),
			Description:         row["description"],
		})
	}
	return festivals, nil
}

func LoadCampaignsCSV(dataDir string) ([]models.HistoricalCampaign, error) {
	rows, err := readCSV(filepath.Join(dataDir, campaignsFile),
		[]string{"brand", "campaign_name", "platform", "backlash_occurred",
			"virality_score", "outcome", "lessons_learned"})
	if err != nil {
		return nil, err
	}

	campaigns := make([]models.HistoricalCampaign, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row["brand"]) == "" {
			continue
		}
		viralityScore, err := strconv.Atoi(strings.TrimSpace(row["virality_score"]))
		if err != nil {
			viralityScore = 0
		}
		campaigns = append(campaigns, models.HistoricalCampaign{
			Brand:            row["brand"],
			CampaignName:     row["campaign_name"],
			Platform:         row["platform"],
			BacklashOccurred: strings.EqualFold(strings.TrimSpace(row["backlash_occurred"]), "yes"),
			ViralityScore:    viralityScore,
			Outcome:          row["outcome"],
			LessonsLearned:   row["lessons_learned"],
		})
	}
	return campaigns, nil
}

func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ";")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
