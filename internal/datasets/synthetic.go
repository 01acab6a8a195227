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

// syntheticTriggers covers the core sensitivity categories for the Indian
// market: religious, colorism, geopolitical, cultural, regional and gender.
var syntheticTriggers = []models.CulturalTrigger{
	{Keyword: "beef", Category: "Religious", AlertMessage: "Beef references are highly sensitive in India due to religious beliefs", Severity: "critical", RiskWeight: 40},
	{Keyword: "cow meat", Category: "Religious", AlertMessage: "Cow meat references are highly sensitive in Hindu culture", Severity: "critical", RiskWeight: 40},
	{Keyword: "pork", Category: "Religious", AlertMessage: "Pork references may offend Muslim audiences", Severity: "high", RiskWeight: 30},
	{Keyword: "interfaith", Category: "Religious", AlertMessage: "Interfaith themes can polarize audiences", Severity: "high", RiskWeight: 25},
	{Keyword: "temple", Category: "Religious", AlertMessage: "Religious place references require careful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "mosque", Category: "Religious", AlertMessage: "Religious place references require careful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "church", Category: "Religious", AlertMessage: "Religious place references require careful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "gurudwara", Category: "Religious", AlertMessage: "Religious place references require careful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "hindu muslim", Category: "Religious", AlertMessage: "Religious community comparisons can be divisive", Severity: "high", RiskWeight: 30},
	{Keyword: "fair skin", Category: "Colorism", AlertMessage: "Fair skin references trigger colorism backlash", Severity: "critical", RiskWeight: 40},
	{Keyword: "gora", Category: "Colorism", AlertMessage: "Skin tone language detected - colorism concern", Severity: "critical", RiskWeight: 35},
	{Keyword: "whitening", Category: "Colorism", AlertMessage: "Skin whitening references are highly controversial", Severity: "critical", RiskWeight: 40},
	{Keyword: "fair and lovely", Category: "Colorism", AlertMessage: "Fair skin beauty standards trigger backlash", Severity: "critical", RiskWeight: 40},
	{Keyword: "dark skin", Category: "Colorism", AlertMessage: "Skin tone references can perpetuate colorism", Severity: "high", RiskWeight: 30},
	{Keyword: "dusky", Category: "Colorism", AlertMessage: "Euphemistic skin tone language is problematic", Severity: "high", RiskWeight: 25},
	{Keyword: "complexion", Category: "Colorism", AlertMessage: "Complexion references may imply colorism", Severity: "medium", RiskWeight: 20},
	{Keyword: "pakistan", Category: "Geopolitical", AlertMessage: "Cross-border references can polarize audiences", Severity: "high", RiskWeight: 30},
	{Keyword: "kashmir", Category: "Geopolitical", AlertMessage: "Kashmir references are extremely sensitive", Severity: "critical", RiskWeight: 40},
	{Keyword: "china", Category: "Geopolitical", AlertMessage: "China references can trigger nationalist sentiment", Severity: "high", RiskWeight: 25},
	{Keyword: "border", Category: "Geopolitical", AlertMessage: "Border references may evoke geopolitical tensions", Severity: "medium", RiskWeight: 20},
	{Keyword: "army", Category: "Geopolitical", AlertMessage: "Military references require respectful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "soldier", Category: "Geopolitical", AlertMessage: "Military references require respectful context", Severity: "medium", RiskWeight: 15},
	{Keyword: "alcohol", Category: "Cultural", AlertMessage: "Alcohol promotion has cultural and legal restrictions", Severity: "medium", RiskWeight: 20},
	{Keyword: "drinking", Category: "Cultural", AlertMessage: "Drinking references may conflict with cultural values", Severity: "medium", RiskWeight: 18},
	{Keyword: "consent", Category: "Cultural", AlertMessage: "Consent themes require sensitive handling", Severity: "high", RiskWeight: 25},
	{Keyword: "harassment", Category: "Cultural", AlertMessage: "Harassment themes require careful context", Severity: "high", RiskWeight: 30},
	{Keyword: "dowry", Category: "Cultural", AlertMessage: "Dowry references touch on sensitive social issues", Severity: "high", RiskWeight: 25},
	{Keyword: "caste", Category: "Cultural", AlertMessage: "Caste references are highly sensitive", Severity: "critical", RiskWeight: 35},
	{Keyword: "reservation", Category: "Cultural", AlertMessage: "Reservation policy references can be divisive", Severity: "high", RiskWeight: 30},
	{Keyword: "love jihad", Category: "Cultural", AlertMessage: "Communally charged terminology detected", Severity: "critical", RiskWeight: 40},
	{Keyword: "beef ban", Category: "Cultural", AlertMessage: "Politically and religiously sensitive topic", Severity: "critical", RiskWeight: 40},
	{Keyword: "north indian", Category: "Regional", AlertMessage: "Regional comparisons can be divisive", Severity: "medium", RiskWeight: 15},
	{Keyword: "south indian", Category: "Regional", AlertMessage: "Regional comparisons can be divisive", Severity: "medium", RiskWeight: 15},
	{Keyword: "madrasi", Category: "Regional", AlertMessage: "Outdated regional terminology is offensive", Severity: "high", RiskWeight: 25},
	{Keyword: "objectification", Category: "Gender", AlertMessage: "Objectification themes trigger backlash", Severity: "high", RiskWeight: 30},
	{Keyword: "item song", Category: "Gender", AlertMessage: "Item song references imply objectification", Severity: "medium", RiskWeight: 20},
	{Keyword: "fair bride", Category: "Gender", AlertMessage: "Combines colorism and gender stereotypes", Severity: "critical", RiskWeight: 40},
}

var syntheticFestivals = []models.Festival{
	{FestivalName: "Diwali", Date: "2025-10-20", SensitivityKeywords: []string{"alcohol", "meat", "negative", "gambling"}, Description: "Festival of lights - avoid negative themes, alcohol, meat, and gambling references"},
	{FestivalName: "Eid al-Fitr", Date: "2025-03-30", SensitivityKeywords: []string{"pork", "alcohol", "non-halal"}, Description: "Islamic festival marking end of Ramadan - respect dietary restrictions"},
	{FestivalName: "Eid al-Adha", Date: "2025-06-07", SensitivityKeywords: []string{"pork", "alcohol", "disrespect"}, Description: "Islamic festival of sacrifice - respect religious practices"},
	{FestivalName: "Holi", Date: "2025-03-14", SensitivityKeywords: []string{"consent", "harassment", "force", "non-consensual"}, Description: "Festival of colors - avoid non-consensual themes and harassment"},
	{FestivalName: "Independence Day", Date: "2025-08-15", SensitivityKeywords: []string{"political", "pakistan", "anti-national", "partition"}, Description: "National pride day - avoid political controversy and divisive themes"},
	{FestivalName: "Republic Day", Date: "2025-01-26", SensitivityKeywords: []string{"political", "anti-national", "constitution"}, Description: "Constitutional celebration - avoid political controversy"},
	{FestivalName: "Ganesh Chaturthi", Date: "2025-08-27", SensitivityKeywords: []string{"disrespect", "mockery", "religious"}, Description: "Hindu festival celebrating Lord Ganesha - respect religious sentiments"},
	{FestivalName: "Durga Puja", Date: "2025-09-30", SensitivityKeywords: []string{"disrespect", "mockery", "religious", "bengali"}, Description: "Major Hindu festival in Eastern India - respect religious and regional sentiments"},
	{FestivalName: "Navratri", Date: "2025-09-22", SensitivityKeywords: []string{"alcohol", "meat", "non-veg", "disrespect"}, Description: "Nine nights of worship - avoid alcohol, meat, and disrespectful content"},
	{FestivalName: "Dussehra", Date: "2025-10-02", SensitivityKeywords: []string{"negative", "evil", "disrespect"}, Description: "Victory of good over evil - maintain positive messaging"},
	{FestivalName: "Karva Chauth", Date: "2025-10-09", SensitivityKeywords: []string{"mockery", "tradition", "patriarchy"}, Description: "Traditional fasting ritual - balance respect with modern values"},
	{FestivalName: "Guru Nanak Jayanti", Date: "2025-11-05", SensitivityKeywords: []string{"disrespect", "religious", "sikh"}, Description: "Sikh festival celebrating Guru Nanak - respect religious sentiments"},
	{FestivalName: "Christmas", Date: "2025-12-25", SensitivityKeywords: []string{"disrespect", "religious", "christian"}, Description: "Christian festival - respect religious sentiments"},
	{FestivalName: "Makar Sankranti", Date: "2025-01-14", SensitivityKeywords: []string{"negative", "harvest"}, Description: "Harvest festival - maintain positive messaging"},
	{FestivalName: "Pongal", Date: "2025-01-15", SensitivityKeywords: []string{"negative", "harvest", "tamil", "south"}, Description: "Tamil harvest festival - respect regional traditions"},
	{FestivalName: "Maha Shivaratri", Date: "2025-02-26", SensitivityKeywords: []string{"disrespect", "mockery", "religious", "shiva"}, Description: "Hindu festival honoring Lord Shiva - respect religious sentiments"},
	{FestivalName: "Ramadan", Date: "2025-03-01", SensitivityKeywords: []string{"food", "eating", "disrespect", "fasting"}, Description: "Islamic month of fasting - respect fasting practices, avoid food promotion"},
	{FestivalName: "Ram Navami", Date: "2025-04-06", SensitivityKeywords: []string{"disrespect", "religious", "ram", "ayodhya"}, Description: "Hindu festival celebrating Lord Ram - respect religious sentiments"},
	{FestivalName: "Mahavir Jayanti", Date: "2025-04-10", SensitivityKeywords: []string{"violence", "meat", "non-veg", "jain"}, Description: "Jain festival - avoid violence, meat, and non-vegetarian content"},
	{FestivalName: "Buddha Purnima", Date: "2025-05-12", SensitivityKeywords: []string{"disrespect", "religious", "buddhist"}, Description: "Buddhist festival celebrating Buddha's birth - respect religious sentiments"},
	{FestivalName: "Raksha Bandhan", Date: "2025-08-09", SensitivityKeywords: []string{"sibling", "family", "tradition"}, Description: "Festival celebrating sibling bonds - respect family values"},
	{FestivalName: "Janmashtami", Date: "2025-08-16", SensitivityKeywords: []string{"disrespect", "mockery", "krishna", "religious"}, Description: "Hindu festival celebrating Lord Krishna's birth - respect religious sentiments"},
	{FestivalName: "Onam", Date: "2025-08-28", SensitivityKeywords: []string{"negative", "kerala", "south", "harvest"}, Description: "Kerala harvest festival - respect regional traditions"},
	{FestivalName: "Gandhi Jayanti", Date: "2025-10-02", SensitivityKeywords: []string{"violence", "disrespect", "political", "gandhi"}, Description: "Birth anniversary of Mahatma Gandhi - maintain non-violence and respect"},
}

var syntheticCampaigns = []models.HistoricalCampaign{
	{Brand: "Surf Excel", CampaignName: "Holi Unity Ad", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 92, Outcome: "Success", LessonsLearned: "Positive festival messaging works when authentic and promotes unity"},
	{Brand: "Zomato", CampaignName: "Delivery Hero", Platform: "Instagram", BacklashOccurred: false, ViralityScore: 88, Outcome: "Success", LessonsLearned: "Relatable everyday heroes resonate well with Indian audiences"},
	{Brand: "Google India", CampaignName: "Reunion", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 95, Outcome: "Success", LessonsLearned: "Emotional storytelling about India-Pakistan friendship works when apolitical"},
	{Brand: "Cadbury", CampaignName: "Kuch Meetha Ho Jaye", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 85, Outcome: "Success", LessonsLearned: "Celebrating small moments and traditions creates positive engagement"},
	{Brand: "Ariel", CampaignName: "Share The Load", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 90, Outcome: "Success", LessonsLearned: "Progressive social messaging works when respectful and relatable"},
	{Brand: "Vicks", CampaignName: "Touch of Care", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 87, Outcome: "Success", LessonsLearned: "Inclusive storytelling about transgender community resonates when authentic"},
	{Brand: "Tata Tea", CampaignName: "Jaago Re", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 82, Outcome: "Success", LessonsLearned: "Social awakening campaigns work when they inspire without preaching"},
	{Brand: "Dove", CampaignName: "Real Beauty India", Platform: "Instagram", BacklashOccurred: false, ViralityScore: 78, Outcome: "Success", LessonsLearned: "Body positivity messaging resonates when it challenges beauty standards"},
	{Brand: "Amazon India", CampaignName: "Diwali Deliveries", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 84, Outcome: "Success", LessonsLearned: "Festival-themed content works when it celebrates traditions authentically"},
	{Brand: "Flipkart", CampaignName: "Kids Exchange Offer", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 89, Outcome: "Success", LessonsLearned: "Humorous takes on parenting resonate across demographics"},
	{Brand: "Tanishq", CampaignName: "Interfaith Baby Shower", Platform: "Instagram", BacklashOccurred: true, ViralityScore: 85, Outcome: "Backlash", LessonsLearned: "Interfaith themes polarize - test with focus groups before launch"},
	{Brand: "Dabur", CampaignName: "Karva Chauth LGBTQ", Platform: "Twitter", BacklashOccurred: true, ViralityScore: 78, Outcome: "Backlash", LessonsLearned: "Traditional festivals + modern values = controversy without careful framing"},
	{Brand: "FabIndia", CampaignName: "Jashn-e-Riwaaz Diwali", Platform: "Twitter", BacklashOccurred: true, ViralityScore: 72, Outcome: "Backlash", LessonsLearned: "Using Urdu for Hindu festival seen as cultural appropriation by some"},
	{Brand: "Manyavar", CampaignName: "Kanyamaan Dowry", Platform: "YouTube", BacklashOccurred: true, ViralityScore: 68, Outcome: "Mixed", LessonsLearned: "Dowry messaging seen as tone-deaf when brand sells wedding products"},
	{Brand: "Red Label Tea", CampaignName: "Free Ka Matlab", Platform: "YouTube", BacklashOccurred: true, ViralityScore: 65, Outcome: "Backlash", LessonsLearned: "Caste-related messaging extremely sensitive - avoid unless expertly handled"},
	{Brand: "Myntra", CampaignName: "Bold Fashion Statement", Platform: "Instagram", BacklashOccurred: true, ViralityScore: 70, Outcome: "Backlash", LessonsLearned: "Logo resembling inappropriate imagery triggers backlash - test visual elements"},
	{Brand: "Surf Excel", CampaignName: "Holi Stain Protection", Platform: "Twitter", BacklashOccurred: true, ViralityScore: 62, Outcome: "Backlash", LessonsLearned: "Hindu-Muslim unity themes polarize in politically charged climate"},
	{Brand: "Lux", CampaignName: "Fair Skin Glow", Platform: "Instagram", BacklashOccurred: true, ViralityScore: 55, Outcome: "Backlash", LessonsLearned: "Fair skin messaging triggers colorism backlash - avoid completely"},
	{Brand: "Pepsi", CampaignName: "Kashmir Campaign", Platform: "Twitter", BacklashOccurred: true, ViralityScore: 58, Outcome: "Backlash", LessonsLearned: "Kashmir references extremely sensitive - avoid geopolitical topics"},
	{Brand: "Reebok", CampaignName: "Fitness Challenge Ramadan", Platform: "Instagram", BacklashOccurred: true, ViralityScore: 60, Outcome: "Backlash", LessonsLearned: "Fitness promotion during fasting month seen as insensitive"},
	{Brand: "Nike India", CampaignName: "Da Da Ding", Platform: "YouTube", BacklashOccurred: false, ViralityScore: 81, Outcome: "Success", LessonsLearned: "Women empowerment in sports resonates when showing real athletes"},
	{Brand: "Swiggy", CampaignName: "Voice of Hunger", Platform: "Instagram", BacklashOccurred: false, ViralityScore: 76, Outcome: "Success", LessonsLearned: "Humorous food content works across platforms and demographics"},
	{Brand: "Paytm", CampaignName: "Cashless India", Platform: "Twitter", BacklashOccurred: false, ViralityScore: 73, Outcome: "Success", LessonsLearned: "Practical utility messaging resonates during relevant moments"},
	{Brand: "Amul", CampaignName: "Topical Ads", Platform: "Twitter", BacklashOccurred: false, ViralityScore: 86, Outcome: "Success", LessonsLearned: "Timely, witty commentary on current events works when apolitical"},
	{Brand: "Ola", CampaignName: "Chalo Niklo", Platform: "Instagram", BacklashOccurred: false, ViralityScore: 74, Outcome: "Success", LessonsLearned: "Travel and exploration themes resonate with aspirational audiences"},
}

// GenerateSyntheticData writes all three core datasets as CSV files.
func GenerateSyntheticData(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	if err := writeTriggersCSV(dataDir); err != nil {
		return err
	}
	if err := writeFestivalsCSV(dataDir); err != nil {
		return err
	}
	if err := writeCampaignsCSV(dataDir); err != nil {
		return err
	}

	slog.Info("[Datasets] Synthetic datasets generated", slog.String("data_dir", dataDir))
	return nil
}

func writeTriggersCSV(dataDir string) error {
	rows := [][]string{{"keyword", "category", "alert_message", "severity", "risk_weight"}}
	for _, t := range syntheticTriggers {
		rows = append(rows, []string{t.Keyword, t.Category, t.AlertMessage, t.Severity, strconv.Itoa(t.RiskWeight)})
	}
	return writeCSV(filepath.Join(dataDir, triggersFile), rows)
}

func writeFestivalsCSV(dataDir string) error {
	rows := [][]string{{"festival_name", "date", "sensitivity_keywords", "description"}}
	for _, f := range syntheticFestivals {
		rows = append(rows, []string{f.FestivalName, f.Date, strings.Join(f.SensitivityKeywords, ";"), f.Description})
	}
	return writeCSV(filepath.Join(dataDir, festivalsFile), rows)
}

func writeCampaignsCSV(dataDir string) error {
	rows := [][]string{{"brand", "campaign_name", "platform", "backlash_occurred",
		"virality_score", "outcome", "lessons_learned"}}
	for _, c := range syntheticCampaigns {
		backlash := "no"
		if c.BacklashOccurred {
			backlash = "yes"
		}
		rows = append(rows, []string{c.Brand, c.CampaignName, c.Platform, backlash,
			strconv.Itoa(c.ViralityScore), c.Outcome, c.LessonsLearned})
	}
	return writeCSV(filepath.Join(dataDir, campaignsFile), rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
