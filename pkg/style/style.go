// Package style provides visual configuration for backends.
//
// A Sheet names one Style per widget surface. Sheets are plain data and can
// be loaded from YAML, so applications can restyle a backend without
// recompiling. Colors are written as "#rrggbb" hex or as SVG 1.1 color
// names ("rebeccapurple", "steelblue", ...).
package style

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	togaerrors "github.com/samtupy/toga/pkg/errors"
)

// Style describes the rendering of one widget surface.
type Style struct {
	// Foreground is the text color ("#rrggbb" or an SVG color name).
	Foreground string `yaml:"foreground,omitempty"`
	// Background is the fill color.
	Background string `yaml:"background,omitempty"`
	// Bold renders text bold.
	Bold bool `yaml:"bold,omitempty"`
	// Padding is the horizontal padding in cells.
	Padding int `yaml:"padding,omitempty"`
}

// Sheet is the full set of widget styles a backend consumes.
type Sheet struct {
	// Selection styles unselected rows of list widgets.
	Selection Style `yaml:"selection"`
	// Highlight styles the selected row of list widgets.
	Highlight Style `yaml:"highlight"`
	// Heading styles table column headings.
	Heading Style `yaml:"heading"`
	// Label styles static text.
	Label Style `yaml:"label"`
	// Switch styles the switch and its label.
	Switch Style `yaml:"switch"`
}

// DefaultSheet returns the styles backends use when no sheet is supplied.
func DefaultSheet() Sheet {
	return Sheet{
		Selection: Style{Foreground: "gainsboro", Padding: 1},
		Highlight: Style{Foreground: "white", Background: "steelblue", Bold: true, Padding: 1},
		Heading:   Style{Foreground: "white", Bold: true, Padding: 1},
		Label:     Style{Foreground: "gainsboro"},
		Switch:    Style{Foreground: "gainsboro"},
	}
}

// ParseSheet decodes a YAML stylesheet. Fields left out keep the default
// sheet's values, and every color in the result is validated.
func ParseSheet(data []byte) (Sheet, error) {
	sheet := DefaultSheet()
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return Sheet{}, togaerrors.New("style.ParseSheet", togaerrors.KindConfig, err)
	}
	for name, s := range map[string]Style{
		"selection": sheet.Selection,
		"highlight": sheet.Highlight,
		"heading":   sheet.Heading,
		"label":     sheet.Label,
		"switch":    sheet.Switch,
	} {
		for _, value := range []string{s.Foreground, s.Background} {
			if value == "" {
				continue
			}
			if _, err := ParseColor(value); err != nil {
				return Sheet{}, togaerrors.New("style.ParseSheet", togaerrors.KindConfig,
					fmt.Errorf("style %q: %w", name, err))
			}
		}
	}
	return sheet, nil
}

// ParseColor resolves a color written as "#rrggbb" hex or an SVG 1.1 color
// name.
func ParseColor(value string) (color.RGBA, error) {
	if strings.HasPrefix(value, "#") {
		var r, g, b uint8
		if _, err := fmt.Sscanf(value, "#%02x%02x%02x", &r, &g, &b); err != nil || len(value) != 7 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", value)
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(value)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", value)
}

// Hex renders a color as "#rrggbb" for backends that speak hex.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
