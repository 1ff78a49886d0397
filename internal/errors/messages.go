package errors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type messageFile struct {
	Messages map[string]string `yaml:"messages"`
}

// LoadMessages reads per-kind message overrides from a YAML file of the form
//
//	messages:
//	  not_found: "..."
func LoadMessages(path string) (map[Kind]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages file: %w", err)
	}
	return ParseMessages(data)
}

// ParseMessages decodes YAML message overrides, rejecting unknown kinds
func ParseMessages(data []byte) (map[Kind]string, error) {
	var file messageFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse messages file: %w", err)
	}

	known := make(map[Kind]bool, len(Kinds))
	for _, k := range Kinds {
		known[k] = true
	}

	out := make(map[Kind]string, len(file.Messages))
	for key, msg := range file.Messages {
		kind := Kind(key)
		if !known[kind] {
			return nil, fmt.Errorf("unknown error kind %q in messages file", key)
		}
		out[kind] = msg
	}
	return out, nil
}
