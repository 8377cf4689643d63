// Package config loads the pin-rule registry that drives within-category
// display ordering. Rules are data: operators ship a YAML file to change
// them, and the compiled-in defaults cover only the sport with documented
// ordering conventions.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/the-markets-must-flow/internal/ordering"
)

// pinEntry is the file form of one (sport, category) rule list.
type pinEntry struct {
	Sport    string             `mapstructure:"sport"`
	Category string             `mapstructure:"category"`
	Rules    []ordering.PinRule `mapstructure:"rules"`
}

type pinFile struct {
	Pins []pinEntry `mapstructure:"pins"`
}

// DefaultRegistry returns the compiled-in pin rules. Only football has
// documented conventions: stat-type subcategories lead Player Props, and
// the headline markets lead Popular. Other sports deliberately get no
// rules rather than invented ones.
func DefaultRegistry() *ordering.Registry {
	r := ordering.NewRegistry()
	r.Add("football", "Player Props",
		ordering.PinRule{Subcategory: "Passing"},
		ordering.PinRule{Subcategory: "Rushing"},
		ordering.PinRule{Subcategory: "Receiving"},
	)
	r.Add("football", "Popular",
		ordering.PinRule{MarketName: "Moneyline"},
		ordering.PinRule{MarketName: "Point Spread"},
		ordering.PinRule{MarketName: "Total Points"},
	)
	return r
}

// LoadRegistry builds a registry from the YAML file at path. A file that
// defines pins replaces the defaults entirely; an empty path returns the
// defaults.
func LoadRegistry(path string) (*ordering.Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read pin rules from %s: %w", path, err)
	}

	var file pinFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse pin rules from %s: %w", path, err)
	}
	if len(file.Pins) == 0 {
		return DefaultRegistry(), nil
	}

	r := ordering.NewRegistry()
	for _, entry := range file.Pins {
		if entry.Sport == "" || entry.Category == "" {
			return nil, fmt.Errorf("pin rule entry in %s is missing sport or category", path)
		}
		r.Add(entry.Sport, entry.Category, entry.Rules...)
	}
	return r, nil
}
