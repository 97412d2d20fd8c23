package features

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed city_tiers.yaml
var defaultCityTiersYAML []byte

// CityTiers classifies a normalized city name into tier 1, 2 or 3.
type CityTiers struct {
	tier1 map[string]struct{}
	tier2 map[string]struct{}
}

type cityTiersFile struct {
	Tier1 []string `yaml:"tier_1"`
	Tier2 []string `yaml:"tier_2"`
}

// DefaultCityTiers returns the tier lists shipped with the binary.
func DefaultCityTiers() *CityTiers {
	tiers, err := ParseCityTiers(defaultCityTiersYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded city tiers are invalid: %v", err))
	}
	return tiers
}

// LoadCityTiers reads tier lists from a YAML file with tier_1 and tier_2 keys.
func LoadCityTiers(path string) (*CityTiers, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read city tiers file: %w", err)
	}
	return ParseCityTiers(content)
}

// ParseCityTiers builds CityTiers from YAML content. Names are normalized the
// same way incoming cities are, so lookups never depend on file casing.
func ParseCityTiers(content []byte) (*CityTiers, error) {
	var file cityTiersFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse city tiers: %w", err)
	}
	if len(file.Tier1) == 0 && len(file.Tier2) == 0 {
		return nil, fmt.Errorf("city tiers file lists no cities")
	}
	return &CityTiers{
		tier1: toSet(file.Tier1),
		tier2: toSet(file.Tier2),
	}, nil
}

// Tier returns 1 or 2 for listed cities and 3 for everything else.
func (t *CityTiers) Tier(city string) int {
	city = NormalizeCity(city)
	if _, ok := t.tier1[city]; ok {
		return 1
	}
	if _, ok := t.tier2[city]; ok {
		return 2
	}
	return 3
}

// NormalizeCity trims surrounding whitespace and title-cases every word.
func NormalizeCity(city string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(city))
}

func toSet(cities []string) map[string]struct{} {
	set := make(map[string]struct{}, len(cities))
	for _, city := range cities {
		if name := NormalizeCity(city); name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}
