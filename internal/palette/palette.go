// Package palette loads design-token palette files: JSONC documents
// whose leaves are CSS color strings, possibly nested into groups. Leaf
// values may also be W3C design-token objects carrying the color under
// a "$value" key.
package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"

	"github.com/AppsByDan/vibrant"
	"github.com/AppsByDan/vibrant/internal/log"
)

// Color is one resolved palette entry.
type Color struct {
	R, G, B, A uint8
}

// Hex renders the color as #rrggbb, extended to #rrggbbaa when the
// alpha is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Palette maps dot-separated token names to resolved colors.
type Palette map[string]Color

// Names returns the token names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Discover expands doublestar glob patterns into a sorted list of
// palette file paths.
func Discover(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// Load reads one palette file. Comments and trailing commas are
// stripped before decoding, so both JSON and JSONC work.
func Load(path string) (Palette, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(raw), &doc); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}

	pal := Palette{}
	if err := flatten("", doc, pal); err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	log.Debug("loaded %d tokens from %s", len(pal), path)
	return pal, nil
}

func flatten(prefix string, node map[string]any, out Palette) error {
	for key, val := range node {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		// $type, $description and friends are metadata, not tokens.
		if len(key) > 0 && key[0] == '$' {
			continue
		}
		switch v := val.(type) {
		case string:
			c, err := resolve(name, v)
			if err != nil {
				return err
			}
			out[name] = c
		case map[string]any:
			if inner, ok := v["$value"].(string); ok {
				c, err := resolve(name, inner)
				if err != nil {
					return err
				}
				out[name] = c
				continue
			}
			if err := flatten(name, v, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("token %s: expected color string or group, got %T", name, val)
		}
	}
	return nil
}

func resolve(name, value string) (Color, error) {
	var c vibrant.ValU8
	if err := vibrant.ParseString(value, &c); err != nil {
		return Color{}, fmt.Errorf("token %s: %w", name, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
