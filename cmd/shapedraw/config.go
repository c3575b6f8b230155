package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// configName is the config file, relative to $XDG_CONFIG_HOME.
var configName = filepath.Join("shapedraw", "shapedraw.conf")

// loadConfig returns the default arguments stored in the config file,
// split on white space. A missing file yields no arguments.
func loadConfig() ([]string, error) {
	path, err := xdg.ConfigFile(configName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return strings.Fields(string(b)), nil
}
