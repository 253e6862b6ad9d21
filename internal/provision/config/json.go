package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/anselusd/internal/flagx"
)

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no file is loaded. The file only needs to carry the
// sections being overridden; absent fields keep their current values
// because unmarshalling happens directly into cfg.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config file read: %w", err)
	}

	if err := json.Unmarshal(file, cfg); err != nil {
		return fmt.Errorf("config file parse: %w", err)
	}
	return nil
}
