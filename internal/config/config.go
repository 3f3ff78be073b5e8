package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultSidecarExtensions lists file extensions deleted during cleanup.
// .spotdl files are metadata sidecars left behind by the spotdl downloader.
var DefaultSidecarExtensions = []string{".spotdl"}

type Config struct {
	Source            string   `koanf:"source"`             // directory to scan for music files
	Destination       string   `koanf:"destination"`        // library root to organize into
	SidecarExtensions []string `koanf:"sidecar_extensions"` // extensions deleted during cleanup
}

// Load reads configuration from the default locations. Missing files are
// fine; an explicit path (from --config) is required to exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if explicitPath != "" {
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, err
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, path := range getConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Source = expandPath(cfg.Source)
	cfg.Destination = expandPath(cfg.Destination)

	if len(cfg.SidecarExtensions) == 0 {
		cfg.SidecarExtensions = append([]string(nil), DefaultSidecarExtensions...)
	}
	for i, ext := range cfg.SidecarExtensions {
		cfg.SidecarExtensions[i] = normalizeExtension(ext)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/shelve/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, "shelve", "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// normalizeExtension lowercases an extension and ensures the leading dot.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
