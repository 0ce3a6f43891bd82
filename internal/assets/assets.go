// Package assets supplies the text-art sprites objects are drawn with.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mehtalab/fixlab/internal/geom"
)

//go:embed sprites/*.txt
var builtin embed.FS

// Sprite is a block of text art normalized to an exact cell size: every
// line has the same width and the line count equals the requested height.
type Sprite struct {
	ID    string
	Lines []string
}

type cacheKey struct {
	id   string
	w, h int
}

// Provider loads sprites by visual ID, preferring an on-disk override
// directory over the built-in set. Lookups are cached per (id, size).
type Provider struct {
	overrideDir string
	warn        func(msg string)
	cache       map[cacheKey]Sprite
}

// NewProvider creates a provider. overrideDir may be empty to use only the
// built-in sprites. warn, if non-nil, receives a message whenever a sprite
// is missing and a placeholder is substituted.
func NewProvider(overrideDir string, warn func(msg string)) *Provider {
	return &Provider{
		overrideDir: overrideDir,
		warn:        warn,
		cache:       make(map[cacheKey]Sprite),
	}
}

// Load returns the sprite for a visual ID, cropped or padded to size. A
// missing or unreadable sprite yields an all-'!' placeholder and a warning;
// the caller always gets something drawable.
func (p *Provider) Load(id string, size geom.Size) Sprite {
	key := cacheKey{id: id, w: size.W, h: size.H}
	if s, ok := p.cache[key]; ok {
		return s
	}

	raw, err := p.read(id)
	if err != nil {
		if p.warn != nil {
			p.warn(fmt.Sprintf("sprite %q unavailable, using placeholder: %v", id, err))
		}
		raw = placeholder(size)
	}

	s := Sprite{ID: id, Lines: normalize(raw, size)}
	p.cache[key] = s
	return s
}

func (p *Provider) read(id string) (string, error) {
	name := id + ".txt"
	if p.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(p.overrideDir, name))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
	data, err := builtin.ReadFile("sprites/" + name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func placeholder(size geom.Size) string {
	row := strings.Repeat("!", size.W)
	rows := make([]string, size.H)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// normalize crops or space-pads the art so it fills the size exactly.
func normalize(raw string, size geom.Size) []string {
	src := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	lines := make([]string, size.H)
	for y := 0; y < size.H; y++ {
		var line string
		if y < len(src) {
			line = strings.TrimRight(src[y], "\r")
		}
		r := []rune(line)
		if len(r) > size.W {
			r = r[:size.W]
		}
		for len(r) < size.W {
			r = append(r, ' ')
		}
		lines[y] = string(r)
	}
	return lines
}
