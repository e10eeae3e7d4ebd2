package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"output_dir":             "./prototypes",
		"state_dir":              "~/.protoforge/state",
		"provider":               "openai",
		"model":                  "",
		"max_retries":            3,
		"timeout":                120,
		"show_progress":          true,
		"skip_confirmations":     false,
		"archive_after_generate": false,
		"serve_addr":             ":8321",
	}
}
