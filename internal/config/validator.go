package config

import "os"

// ValidateEnvWithWarnings returns warnings for settings that are accepted
// but probably unintended
func (c *Config) ValidateEnvWithWarnings() []string {
	var warnings []string

	if c.StoreBackend == StoreBackendPostgres && c.DBPassword == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is the default value - please use a secure password")
	}

	if c.StoreBackend == StoreBackendMemory && c.SeedFile == "" {
		warnings = append(warnings, "memory store started without SEED_FILE - no items are available")
	}

	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is empty - session endpoints accept unauthenticated requests")
	}

	if _, err := os.Stat(c.PanelsDir); err != nil {
		warnings = append(warnings, "PANELS_DIR does not exist: "+c.PanelsDir)
	}

	return warnings
}
