package gallery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/photox/internal/models"
	"github.com/desertthunder/photox/internal/shared"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the manifest at path. Files ending in .yaml or .yml are decoded as YAML, anything else as TOML.
func Load(path string, logger *log.Logger) (*models.Gallery, error) {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	logger = shared.WithLogger(logger, "manifest", path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, logger)
	default:
		return Parse(data, logger)
	}
}

// Parse decodes a TOML manifest, assigns missing ids and drops invalid annotations.
//
// Duplicate photo ids make the manifest invalid since ids must be unique within the list.
func Parse(data []byte, logger *log.Logger) (*models.Gallery, error) {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}

	var g models.Gallery
	md, err := toml.Decode(string(data), &g)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidManifest, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warn("ignoring unknown manifest keys", "keys", undecoded)
	}
	return normalize(&g, logger)
}

// ParseYAML is [Parse] for YAML manifests.
func ParseYAML(data []byte, logger *log.Logger) (*models.Gallery, error) {
	if logger == nil {
		logger = shared.NewLogger(io.Discard)
	}

	var g models.Gallery
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidManifest, err)
	}
	return normalize(&g, logger)
}

func normalize(g *models.Gallery, logger *log.Logger) (*models.Gallery, error) {
	seen := make(map[string]struct{}, len(g.Photos))
	for i := range g.Photos {
		p := &g.Photos[i]
		if p.ID == "" {
			p.ID = shared.GenerateID()
			logger.Debug("generated photo id", "name", p.Name, "id", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate photo id %q", shared.ErrInvalidManifest, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Width < 0 || p.Height < 0 {
			return nil, fmt.Errorf("%w: photo %q has negative dimensions", shared.ErrInvalidManifest, p.ID)
		}
		if !p.Orientation.Valid() {
			logger.Warn("unknown orientation, displaying as normal", "photo", p.ID, "orientation", int(p.Orientation))
		}

		p.Annotations = validAnnotations(p, logger)
	}

	return g, nil
}

func validAnnotations(p *models.Photo, logger *log.Logger) []models.Annotation {
	kept := p.Annotations[:0]
	for _, a := range p.Annotations {
		if a.ID == "" {
			a.ID = shared.GenerateID()
		}
		if err := a.Validate(); err != nil {
			logger.Warn("skipping annotation", "photo", p.ID, "annotation", a.ID, "error", err)
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
