package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// Config keys.
const (
	cfgKeyStyle   = "style"
	cfgKeyRegions = "regions"
	cfgKeyLedger  = "ledger_path"
)

const defaultLedgerPath = ".vetomap-runs.db"

// loadConfig reads the optional YAML config file. With no --config flag
// a missing ./.vetomap.yaml is not an error; an explicitly named file
// must exist.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLedger, defaultLedgerPath)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(".vetomap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// styleFromConfig returns the plot style, starting from the defaults
// and applying any `style:` overrides from the config file.
func styleFromConfig(v *viper.Viper) (types.PlotStyle, error) {
	style := types.DefaultStyle()
	if v.IsSet(cfgKeyStyle) {
		if err := v.UnmarshalKey(cfgKeyStyle, &style); err != nil {
			return style, fmt.Errorf("parse style config: %w", err)
		}
	}
	return style, nil
}

// regionsFromConfig returns the removal regions from the config file,
// falling back to the built-in FPix defaults.
func regionsFromConfig(v *viper.Viper) ([]types.Region, error) {
	if !v.IsSet(cfgKeyRegions) {
		return types.DefaultRegions, nil
	}
	var regions []types.Region
	if err := v.UnmarshalKey(cfgKeyRegions, &regions); err != nil {
		return nil, fmt.Errorf("parse regions config: %w", err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("regions config is empty")
	}
	for i, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("regions config entry %d: %w", i, err)
		}
	}
	return regions, nil
}
