// Package config loads runtime configuration from a JSON file backend with
// environment variable overrides. Every value has a working default, so a
// fresh checkout runs with no config at all.
package config

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Storage   StorageConfig
	Assistant AssistantConfig
	Admin     AdminConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port int
}

type DatasetConfig struct {
	// Path points at a retail dataset JSON file. Empty means the embedded
	// seed dataset.
	Path string
}

type StorageConfig struct {
	DataDir string
}

type AssistantConfig struct {
	// DelayMS is the simulated generation latency in milliseconds. Zero
	// disables the delay; negative selects the built-in default.
	DelayMS int
}

type AdminConfig struct {
	// Token protects the interaction log endpoints. Empty disables auth.
	// Env-only; it is never written to the config file.
	Token string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Dataset: DatasetConfig{
			Path: "",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir(),
		},
		Assistant: AssistantConfig{
			DelayMS: 500,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file at
// $XDG_CONFIG_HOME/clerk/config.json, then applies CLERK_* environment
// variable overrides.
func Load() (Config, error) {
	return loadWith(newPlatformBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}
