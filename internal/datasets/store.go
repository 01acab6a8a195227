// Package datasets loads the cultural trigger lexicon, festival calendar and
// historical campaign corpus from CSV files or DynamoDB.
package datasets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spacesedan/adpulse/internal/models"
)

const (
	BackendCSV      = "csv"
	BackendDynamoDB = "dynamodb"
)

// Store holds the three core datasets in memory for the lifetime of the
// process. All lookups are read-only after Load.
type Store struct {
	Triggers  []models.CulturalTrigger
	Festivals []models.Festival
	Campaigns []models.HistoricalCampaign
}

// Load reads all core datasets from the configured backend. Missing CSV
// files fall back to generated synthetic data.
func Load(ctx context.Context) (*Store, error) {
	backend := strings.ToLower(os.Getenv("ADPULSE_DATASET_BACKEND"))
	if backend == "" {
		backend = BackendCSV
	}

	switch backend {
	case BackendCSV:
		dataDir := os.Getenv("ADPULSE_DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		return loadFromCSV(dataDir)
	case BackendDynamoDB:
		return loadFromDynamoDB(ctx)
	default:
		return nil, fmt.Errorf("unknown dataset backend: %q", backend)
	}
}

func loadFromCSV(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	triggers, err := LoadTriggersCSV(dataDir)
	if err != nil {
		return nil, err
	}
	festivals, err := LoadFestivalsCSV(dataDir)
	if err != nil {
		return nil, err
	}
	campaigns, err := LoadCampaignsCSV(dataDir)
	if err != nil {
		return nil, err
	}

	// Any empty dataset means a missing or unusable file. Regenerate and
	// reload once.
	if len(triggers) == 0 || len(festivals) == 0 || len(campaigns) == 0 {
		slog.Info("[Datasets] Core dataset missing, generating synthetic data",
			slog.String("data_dir", dataDir))
		if err := GenerateSyntheticData(dataDir); err != nil {
			return nil, fmt.Errorf("failed to generate synthetic data: %w", err)
		}

		if triggers, err = LoadTriggersCSV(dataDir); err != nil {
			return nil, err
		}
		if festivals, err = LoadFestivalsCSV(dataDir); err != nil {
			return nil, err
		}
		if campaigns, err = LoadCampaignsCSV(dataDir); err != nil {
			return nil, err
		}
	}

	slog.Info("[Datasets] Core datasets loaded",
		slog.Int("triggers", len(triggers)),
		slog.Int("festivals", len(festivals)),
		slog.Int("campaigns", len(campaigns)))

	return &Store{
		Triggers:  triggers,
		Festivals: festivals,
		Campaigns: campaigns,
	}, nil
}

// TriggerByKeyword returns the trigger matching the keyword, or nil.
func (s *Store) TriggerByKeyword(keyword string) *models.CulturalTrigger {
	lower := strings.ToLower(keyword)
	for i := range s.Triggers {
		if strings.ToLower(s.Triggers[i].Keyword) == lower {
			return &s.Triggers[i]
		}
	}
	return nil
}

// FestivalByName returns the festival matching the name, or nil.
func (s *Store) FestivalByName(name string) *models.Festival {
	lower := strings.ToLower(name)
	for i := range s.Festivals {
		if strings.ToLower(s.Festivals[i].FestivalName) == lower {
			return &s.Festivals[i]
		}
	}
	return nil
}

// CampaignsByPlatform returns all historical campaigns for the platform.
func (s *Store) CampaignsByPlatform(platform string) []models.HistoricalCampaign {
	lower := strings.ToLower(platform)
	var matched []models.HistoricalCampaign
	for _, c := range s.Campaigns {
		if strings.ToLower(c.Platform) == lower {
			matched = append(matched, c)
		}
	}
	return matched
}
