// Package credentials resolves provider API keys. Sources are tried in
// order and an absent key is never an error, callers decide what a missing
// credential means.
package credentials

import (
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

type Source interface {
	// Lookup returns the value for key and whether it is present.
	Lookup(key string) (string, bool)
}

// First returns the first present key from src.
func First(src Source, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

type Env struct{}

func (Env) Lookup(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

// File reads keys from a flat yaml map. The file is re-read on every
// lookup so a rebuilt registry sees current contents. A missing or
// unreadable file behaves as an empty source.
type File struct {
	Path string
}

func (f File) Lookup(key string) (string, bool) {
	values, err := ReadFile(f.Path)
	if err != nil {
		return "", false
	}
	v, ok := values[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func ReadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

type Chain []Source

func (c Chain) Lookup(key string) (string, bool) {
	for _, src := range c {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Static is a fixed in-memory source.
type Static map[string]string

func (s Static) Lookup(key string) (string, bool) {
	v, ok := s[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Default resolves from the environment first, then the default
// credentials file.
func Default() Source {
	return Chain{Env{}, File{Path: DefaultFilePath()}}
}

func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "modelhub", "credentials.yaml")
}
