package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidFile indicates a palette file that could not be read, parsed or
// validated.
var ErrInvalidFile = errors.New("invalid palette file")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// File is the on-disk representation of a [Palette].
type File struct {
	Shades []FileShade `json:"shades" yaml:"shades"`
}

// FileShade is one entry of [File.Shades].
type FileShade struct {
	Glyph string `json:"glyph" yaml:"glyph"`
	Color string `json:"color" yaml:"color"`
}

// Schema returns the JSON Schema that palette files are validated against.
func Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Title:       "asciiplay palette",
		Description: "Ordered glyph palette. Earlier shades win ties.",
		Type:        "object",
		Required:    []string{"shades"},
		Properties: map[string]*jsonschema.Schema{
			"shades": {
				Type:     "array",
				MinItems: jsonschema.Ptr(1),
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"glyph", "color"},
					Properties: map[string]*jsonschema.Schema{
						"glyph": {
							Type:        "string",
							Description: "single printable character",
							MinLength:   jsonschema.Ptr(1),
						},
						"color": {
							Type:        "string",
							Description: "reference color as #rrggbb",
							Pattern:     hexColor.String(),
						},
					},
					AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
				},
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// Load reads and parses the palette file at path.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes YAML palette data, validates it against [Schema] and builds
// a [Palette] with [New].
func Parse(data []byte) (*Palette, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	// Round-trip through JSON so the validator sees plain JSON values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	var instance any

	err = json.Unmarshal(raw, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving palette schema: %w", err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	var f File

	err = json.Unmarshal(raw, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return f.Palette()
}

// Palette converts f into a validated [Palette].
func (f File) Palette() (*Palette, error) {
	shades := make([]Shade, 0, len(f.Shades))

	for i, s := range f.Shades {
		c, err := ParseHex(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: shade %d: %w", ErrInvalidFile, i, err)
		}

		shades = append(shades, Shade{Glyph: s.Glyph, Color: c})
	}

	p, err := New(shades...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return p, nil
}

// File returns the on-disk representation of p.
func (p *Palette) File() File {
	f := File{Shades: make([]FileShade, 0, len(p.shades))}
	for _, s := range p.shades {
		f.Shades = append(f.Shades, FileShade{Glyph: s.Glyph, Color: s.Color.Hex()})
	}

	return f
}

// YAML encodes p in the palette file format.
func (p *Palette) YAML() ([]byte, error) {
	return yaml.Marshal(p.File())
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (Color, error) {
	if !hexColor.MatchString(s) {
		return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}

	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
