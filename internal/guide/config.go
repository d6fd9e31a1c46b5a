package guide

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultIndexURL is the city's waste-separation guide index page.
const DefaultIndexURL = "https://www.nishi.or.jp/kurashi/gomi/gominoshushu/gominobunnbetu.html"

// Mapping associates a substring of a guide category title with the label
// the calendar uses for the same category.
type Mapping struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Config holds the hand-maintained crawl content: which link texts qualify
// as category pages, and how guide titles map onto calendar labels. Mapping
// order matters: more specific keys must precede more general ones.
type Config struct {
	IndexURL string    `json:"index_url,omitempty"`
	Keywords []string  `json:"keywords"`
	Mappings []Mapping `json:"mappings"`
}

// DefaultConfig returns the crawl content for the Nishinomiya guide pages.
func DefaultConfig() Config {
	return Config{
		IndexURL: DefaultIndexURL,
		Keywords: []string{
			"もやすごみ",
			"燃やさないごみ",
			"資源",
			"ペットボトル",
			"プラ",
			"危険",
		},
		Mappings: []Mapping{
			{Key: "もやすごみ", Label: "燃やすごみ"},
			{Key: "燃やすごみ", Label: "燃やすごみ"},
			{Key: "燃やさないごみ", Label: "燃やさないごみ"},
			{Key: "資源A", Label: "資源A"},
			{Key: "資源B", Label: "資源B"},
			{Key: "その他プラ", Label: "その他プラ"},
			{Key: "ペットボトル", Label: "ペットボトル"},
		},
	}
}

// LoadConfig reads a Config from a JSON file. Fields left empty fall back
// to the defaults so a file can override just the keywords or just the
// mapping table.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.IndexURL == "" {
		cfg.IndexURL = defaults.IndexURL
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = defaults.Keywords
	}
	if len(cfg.Mappings) == 0 {
		cfg.Mappings = defaults.Mappings
	}
	return cfg, nil
}
