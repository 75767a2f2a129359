package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.AgentURL == "" {
		return errors.New("AGENT_URL environment variable is required")
	}
	return nil
}
