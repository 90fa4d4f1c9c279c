package server

import (
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/cfranzen/modelhub/log"
)

var (
	// default server config
	C Config = Config{
		Log: log.Config{
			Level: "info",
		},
		Host: "0.0.0.0:9000",
		Credentials: CredentialsConfig{
			Watch: true,
		},
	}
)

type Config struct {
	Log         log.Config        `yaml:"log"`
	Host        string            `yaml:"host"`
	Tokens      []string          `yaml:"tokens"`
	Credentials CredentialsConfig `yaml:"credentials"`
	GoogleUrl   string            `yaml:"googleUrl"`
}

type CredentialsConfig struct {
	// File points at the yaml credentials store. Empty means the default
	// path under the user config dir.
	File  string `yaml:"file"`
	Watch bool   `yaml:"watch"`
}

func LoadConfig(f string) error {
	fd, err := os.ReadFile(f)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(fd, &C); err != nil {
		return err
	}

	return nil
}
