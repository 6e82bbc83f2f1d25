package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DirName       = ".harvest"
	RulesFileName = "rules.toml"
)

var ErrUnsupportedFormat = errors.New("unsupported rules format")

// Load reads a rules file. The format follows the extension: .toml, or
// .yaml/.yml. Omitted settings fall back to the defaults.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	r, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes rules in the format named by ext and validates them.
func Parse(data []byte, ext string) (Rules, error) {
	r := withoutLists()

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return Rules{}, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
			return Rules{}, err
		}
	default:
		return Rules{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	r.fillLists()
	if err := Validate(r); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Marshal renders rules as TOML.
func Marshal(r Rules) ([]byte, error) {
	data, err := toml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default rules to baseDir/.harvest/rules.toml and
// returns the path. An existing file is never overwritten.
func WriteDefault(baseDir string) (string, error) {
	dir := filepath.Join(baseDir, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create rules directory: %w", err)
	}

	path := filepath.Join(dir, RulesFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("rules file already exists: %s", path)
	}

	data, err := Marshal(Default())
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write rules file: %w", err)
	}
	return path, nil
}
