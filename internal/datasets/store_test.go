package datasets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SyntheticFallback(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("ADPULSE_DATASET_BACKEND", "csv")
	t.Setenv("ADPULSE_DATA_DIR", dataDir)

	store, err := Load(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, store.Triggers)
	assert.NotEmpty(t, store.Festivals)
	assert.NotEmpty(t, store.Campaigns)

	// The generated files are reused on the next load.
	for _, name := range []string{triggersFile, festivalsFile, campaignsFile} {
		_, err := os.Stat(filepath.Join(dataDir, name))
		assert.NoError(t, err)
	}
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("ADPULSE_DATASET_BACKEND", "etcd")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadTriggersCSV(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, triggersFile,
		"keyword,category,alert_message,severity,risk_weight\n"+
			"beef,Religious,Beef references are sensitive,CRITICAL,35\n"+
			",Religious,empty keyword is skipped,high,20\n"+
			"border,Geopolitical,Border references polarize,medium,notanumber\n")

	triggers, err := LoadTriggersCSV(dataDir)
	require.NoError(t, err)
	require.Len(t, triggers, 2)

	assert.Equal(t, "beef", triggers[0].Keyword)
	assert.Equal(t, "critical", triggers[0].Severity)
	assert.Equal(t, 35, triggers[0].RiskWeight)

	// Unparseable risk weight falls back to zero.
	assert.Equal(t, 0, triggers[1].RiskWeight)
}

func TestLoadFestivalsCSV(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, festivalsFile,
		"festival_name,date,sensitivity_keywords,description\n"+
			"Diwali,2025-10-20,alcohol; beef ;gambling,Festival of lights\n")

	festivals, err := LoadFestivalsCSV(dataDir)
	require.NoError(t, err)
	require.Len(t, festivals, 1)

	assert.Equal(t, "Diwali", festivals[0].FestivalName)
	assert.Equal(t, "2025-10-20", festivals[0].Date)
	assert.Equal(t, []string{"alcohol", "beef", "gambling"}, festivals[0].SensitivityKeywords)
}

func TestLoadCampaignsCSV(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, campaignsFile,
		"brand,campaign_name,platform,backlash_occurred,virality_score,outcome,lessons_learned\n"+
			"Tanishq,Ekatvam,Instagram,Yes,75,backlash,Interfaith themes need care\n"+
			"Zomato,IPL Banter,Twitter,no,88,viral_success,Humor lands on Twitter\n")

	campaigns, err := LoadCampaignsCSV(dataDir)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)

	assert.True(t, campaigns[0].BacklashOccurred)
	assert.False(t, campaigns[1].BacklashOccurred)
	assert.Equal(t, 88, campaigns[1].ViralityScore)
}

func TestReadCSV_MissingRequiredField(t *testing.T) {
	dataDir := t.TempDir()
	writeFile(t, dataDir, triggersFile,
		"keyword,category\nbeef,Religious\n")

	triggers, err := LoadTriggersCSV(dataDir)
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestReadCSV_MissingFile(t *testing.T) {
	triggers, err := LoadTriggersCSV(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, triggers)
}

func TestStoreLookups(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, GenerateSyntheticData(dataDir))

	store, err := loadFromCSV(dataDir)
	require.NoError(t, err)

	trigger := store.TriggerByKeyword("Fair Skin")
	require.NotNil(t, trigger)
	assert.Equal(t, "Colorism", trigger.Category)

	festival := store.FestivalByName("diwali")
	require.NotNil(t, festival)
	assert.NotEmpty(t, festival.Date)

	assert.NotEmpty(t, store.CampaignsByPlatform("Instagram"))
	assert.Nil(t, store.TriggerByKeyword("no such keyword"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
