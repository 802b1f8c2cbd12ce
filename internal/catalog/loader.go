package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PanchamBro/mediawiki-projects-list/internal/model"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultCatalogFile is the default catalog file name searched for by Find.
const DefaultCatalogFile = "wikiprojects.yaml"

// AppName is the application name used for XDG directory paths.
const AppName = "wikiresolve"

// defaultCatalogYAML is the catalog shipped with the binary. It covers the
// well-known wiki farms and frontend proxies and is used whenever no
// catalog file is found on disk.
//
//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

// File is the on-disk YAML shape of a catalog.
type File struct {
	// WikiProjects lists project descriptors in priority order.
	WikiProjects []model.WikiProject `yaml:"wikiProjects"`

	// FrontendProxies lists proxy descriptors in priority order.
	FrontendProxies []model.FrontendProxy `yaml:"frontendProxies"`
}

// Load reads, normalizes, and compiles a catalog from the YAML file at
// path. It returns ErrCatalogNotFound when the file does not exist.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, err
	}
	return parse(data)
}

// LoadDefault normalizes and compiles the embedded default catalog.
// The embedded data is validated by tests, so failures here indicate a
// broken build rather than user error.
func LoadDefault() (*Catalog, error) {
	return parse(defaultCatalogYAML)
}

// parse unmarshals catalog YAML and hands it to New.
func parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f.WikiProjects, f.FrontendProxies)
}

// Find searches for a catalog file in the following order:
// 1. If path is specified, use it directly
// 2. Look for wikiprojects.yaml in the current directory
// 3. Look for wikiprojects.yaml in the user's home directory
// 4. Look for wikiprojects.yaml in the XDG config directory
//
// Returns the path of the first file found, or empty string if none
// exists; callers fall back to LoadDefault in that case.
func Find(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultCatalogFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultCatalogFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(xdg.ConfigHome, AppName, DefaultCatalogFile)
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return ""
}
