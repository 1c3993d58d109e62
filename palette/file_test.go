package palette_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/palette"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []palette.Shade
		err   bool
	}{
		"ordered shades": {
			input: `
shades:
  - glyph: "@"
    color: "#000000"
  - glyph: "."
    color: "#FFFFFF"
`,
			want: []palette.Shade{
				{Glyph: "@", Color: palette.Gray(0)},
				{Glyph: ".", Color: palette.Gray(255)},
			},
		},
		"block glyphs": {
			input: `
shades:
  - glyph: "▒"
    color: "#102030"
`,
			want: []palette.Shade{
				{Glyph: "▒", Color: palette.Color{R: 0x10, G: 0x20, B: 0x30}},
			},
		},
		"missing shades": {
			input: `other: 1`,
			err:   true,
		},
		"empty shades": {
			input: `shades: []`,
			err:   true,
		},
		"bad color": {
			input: `
shades:
  - glyph: "@"
    color: "black"
`,
			err: true,
		},
		"missing glyph": {
			input: `
shades:
  - color: "#000000"
`,
			err: true,
		},
		"multi-character glyph": {
			input: `
shades:
  - glyph: "@@"
    color: "#000000"
`,
			err: true,
		},
		"unknown field": {
			input: `
shades:
  - glyph: "@"
    color: "#000000"
    weight: 3
`,
			err: true,
		},
		"not yaml": {
			input: "shades: [",
			err:   true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := palette.Parse([]byte(tc.input))
			if tc.err {
				require.ErrorIs(t, err, palette.ErrInvalidFile)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Shades())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")

	data, err := palette.Default().YAML()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	p, err := palette.Load(path)
	require.NoError(t, err)
	assert.Equal(t, palette.Default().Shades(), p.Shades())

	_, err = palette.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, palette.ErrInvalidFile)
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  palette.Color
		err   bool
	}{
		"lowercase": {input: "#0a0b0c", want: palette.Color{R: 10, G: 11, B: 12}},
		"uppercase": {input: "#FF8000", want: palette.Color{R: 255, G: 128, B: 0}},
		"no hash":   {input: "ff8000", err: true},
		"short":     {input: "#fff", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := palette.ParseHex(tc.input)
			if tc.err {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
			assert.Equal(t, strings.ToLower(tc.input), c.Hex())
		})
	}
}
