package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// parseEnv overlays values from the environment. Variables use the ANSELUS_
// prefix with section and field joined by underscores, e.g.
// ANSELUS_DATABASE_PASSWORD or ANSELUS_ACCOUNTCOUNT. This is how the
// database password usually reaches the tool, keeping it out of config
// files and shell history.
func parseEnv(cfg *Config) error {
	if err := envconfig.Process("anselus", cfg); err != nil {
		return fmt.Errorf("environment parse: %w", err)
	}
	return nil
}
