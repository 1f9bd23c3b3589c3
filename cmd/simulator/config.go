package main

import (
	"fmt"
	"os"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// fileConfig is the yaml run configuration. Every field is optional and
// overrides the flag defaults when set.
type fileConfig struct {
	Mode         string         `yaml:"mode"`
	HorizonYears int            `yaml:"horizon_years"`
	GWPHorizon   string         `yaml:"gwp_horizon"`
	Parameters   map[string]any `yaml:"parameters"`
}

func applyConfigFile(path string, cfg *wastecarbonsim.RunConfig) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	if file.Mode != "" {
		cfg.Mode = wastecarbonsim.Mode(file.Mode)
	}
	if file.HorizonYears > 0 {
		cfg.HorizonDays = file.HorizonYears * 365
	}
	switch file.GWPHorizon {
	case "":
	case wastecarbonsim.GWP20.Horizon:
		cfg.GWP = wastecarbonsim.GWP20
	case wastecarbonsim.GWP100.Horizon:
		cfg.GWP = wastecarbonsim.GWP100
	default:
		return fmt.Errorf("unknown gwp horizon %q", file.GWPHorizon)
	}

	if file.Parameters == nil {
		return nil
	}

	// yaml decodes whole numbers as ints, let mapstructure convert
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg.Params,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(file.Parameters); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}

	return nil
}
