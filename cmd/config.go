package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configName = ".jlox.yaml"

type config struct {
	Prompt string `yaml:"prompt"`
	Color  bool   `yaml:"color"`
	Debug  bool   `yaml:"debug"`
}

func defaultConfig() *config {
	return &config{
		Prompt: "> ",
		Color:  true,
	}
}

// loadConfig reads path if given, else ./.jlox.yaml and then
// $HOME/.jlox.yaml; the first file that reads and decodes wins.
// A missing or malformed file is skipped, and when none decodes
// the defaults apply.
func loadConfig(path string) *config {
	candidates := []string{path}
	if path == "" {
		home, _ := os.UserHomeDir()
		candidates = []string{configName, filepath.Join(home, configName)}
	}

	cfg := defaultConfig()
	for _, candidate := range candidates {
		b, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			cfg = defaultConfig()
			continue
		}
		break
	}
	return cfg
}
