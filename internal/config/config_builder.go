package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs  []*Config
	warnings []string
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 2),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withFile loads the JSON config file at jsonFilePath. A missing file is
// skipped silently; a file that exists but cannot be read or parsed is
// downgraded to a warning so resolution can continue with the environment.
func (b *configBuilder) withFile(jsonFilePath string) *configBuilder {
	if _, err := os.Stat(jsonFilePath); os.IsNotExist(err) {
		return b
	}

	fileCfg, err := parseFile(jsonFilePath)
	if err != nil {
		b.warnings = append(b.warnings, fmt.Sprintf("config file %s: %v", jsonFilePath, err))
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}
