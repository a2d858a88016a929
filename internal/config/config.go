// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the ag-weekly configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pdiddy/ag-weekly/pkg/types"
)

// requiredKeys must be present in every configuration file. Scoring
// multipliers, output.dir, and the arXiv section have defaults; these do not.
var requiredKeys = []string{
	"limits.max_fetch",
	"limits.lookback_days",
	"scoring.threshold",
	"profile",
	"output.filename_prefix",
}

// Load reads the configuration file at path (or the default locations when
// path is empty), applies defaults, binds the ARXIV_CONTACT override, and
// checks required keys. extraRequired names keys a specific command needs on
// top of the baseline, e.g. limits.max_details for the theorems report.
//
// Any error here is fatal to the run: the pipeline never starts on a partial
// configuration.
func Load(path string, extraRequired ...string) (*types.Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ag-weekly")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ag-weekly"))
		}
	}

	v.SetDefault("arxiv.category", "math.AG")
	v.SetDefault("arxiv.contact", "")
	v.SetDefault("scoring.title_weight", 1.0)
	v.SetDefault("scoring.abstract_weight", 1.0)
	v.SetDefault("scoring.author_weight", 1.0)
	v.SetDefault("scoring.category_weight", 0.5)
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.font_file", "")
	v.SetDefault("output.include_others_titles", false)

	if err := v.BindEnv("arxiv.contact", "ARXIV_CONTACT"); err != nil {
		return nil, fmt.Errorf("binding environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	required := make([]string, 0, len(requiredKeys)+len(extraRequired))
	required = append(required, requiredKeys...)
	required = append(required, extraRequired...)
	for _, key := range required {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("config: %s is required", key)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	normalizeWeights(&cfg.Profile)
	return &cfg, nil
}

// normalizeWeights applies the per-item default weight of 1. Zero is treated
// as unspecified: a zero-weight term could never affect a score.
func normalizeWeights(p *types.ProfileConfig) {
	for i := range p.Keywords {
		if p.Keywords[i].Weight == 0 {
			p.Keywords[i].Weight = 1
		}
	}
	for i := range p.AuthorsPriority {
		if p.AuthorsPriority[i].Weight == 0 {
			p.AuthorsPriority[i].Weight = 1
		}
	}
	for i := range p.MSCTerms {
		if p.MSCTerms[i].Weight == 0 {
			p.MSCTerms[i].Weight = 1
		}
	}
}
