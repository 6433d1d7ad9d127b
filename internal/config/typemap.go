package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeMap maps short model-type codes (ckpt, lora, vae, ...) to destination
// directories. It is supplied by the user at startup instead of being
// hardcoded into the tool.
type TypeMap map[string]string

// DefaultTypeMapPath returns the conventional location of the type-map file.
func DefaultTypeMapPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".civiget.yaml")
}

// LoadTypeMap loads a type map from a YAML file of the form:
//
//	types:
//	  ckpt: /data/models/Stable-diffusion
//	  lora: /data/models/Lora
func LoadTypeMap(path string) (TypeMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Types map[string]string `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("no type mappings found in %s", path)
	}

	m := make(TypeMap, len(doc.Types))
	for code, dir := range doc.Types {
		if dir == "" {
			return nil, fmt.Errorf("type %q in %s has an empty directory", code, path)
		}
		m[strings.ToLower(code)] = dir
	}
	return m, nil
}

// Dir returns the destination directory for a type code.
func (m TypeMap) Dir(code string) (string, error) {
	dir, ok := m[strings.ToLower(code)]
	if !ok {
		return "", fmt.Errorf("unknown model type code %q (known: %s)", code, strings.Join(m.Codes(), ", "))
	}
	return dir, nil
}

// Codes returns the known type codes, sorted.
func (m TypeMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
