package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

const (
	dirName       = ".harvest"
	rulesFileName = "rules.toml"
)

// FindRulesFile returns the nearest .harvest/rules.toml at or above
// startDir. Only regular files count; a stat failure other than "not found"
// stops the search.
func FindRulesFile(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for ; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, dirName, rulesFileName)
		ok, err := isRulesFile(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
		if filepath.Dir(dir) == dir {
			return "", false, nil
		}
	}
}

func isRulesFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	default:
		return info.Mode().IsRegular(), nil
	}
}

// GlobalRulesPath is ~/.harvest/rules.toml.
func GlobalRulesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dirName, rulesFileName), nil
}

// Resolve picks the rules file to use: an explicit path wins, then the
// nearest project file, then the global one. An empty result means the
// built-in defaults apply.
func Resolve(explicit, startDir string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("rules file not found: %s", explicit)
		}
		return explicit, nil
	}

	path, found, err := FindRulesFile(startDir)
	if err != nil {
		return "", err
	}
	if found {
		return path, nil
	}

	global, err := GlobalRulesPath()
	if err != nil {
		return "", err
	}
	ok, err := isRulesFile(global)
	if err != nil || !ok {
		return "", err
	}
	return global, nil
}
