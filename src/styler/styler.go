// Package styler turns the configured color/style selections into a
// renderable terminal style. Color and attribute axes are drawn
// independently on every resolve.
package styler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mommy/src/config"
	"mommy/src/picker"
)

// Descriptor is a resolved terminal style ready to wrap a message.
type Descriptor struct {
	Style  lipgloss.Style
	Hidden bool
}

// Named colors map onto the basic ANSI palette.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"purple":  lipgloss.Color("5"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// ParseRGB validates an "R,G,B" string: exactly three trimmed 0-255
// components. Anything else is a parse failure.
func ParseRGB(s string) (lipgloss.Color, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return "", false
	}
	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return "", false
		}
		vals[i] = uint8(n)
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", vals[0], vals[1], vals[2])), true
}

// Resolve draws one color and one style combination from the configuration.
// An RGB list, when present, takes precedence over named colors even if it
// yields no valid pick.
func Resolve(cfg *config.Config) Descriptor {
	d := Descriptor{Style: lipgloss.NewStyle()}

	if cfg.ColorRGB != nil {
		if rgb, ok := picker.Pick(cfg.ColorRGB); ok {
			if col, ok := ParseRGB(rgb); ok {
				d.Style = d.Style.Foreground(col)
			}
		}
	} else if name, ok := picker.Pick(cfg.Colors); ok {
		if col, ok := namedColors[name]; ok {
			d.Style = d.Style.Foreground(col)
		}
	}

	if combo, ok := picker.Pick(cfg.Styles); ok {
		for _, attr := range combo {
			d.apply(attr)
		}
	}
	return d
}

// apply maps one attribute token onto the style. Unrecognized tokens are
// silently ignored.
func (d *Descriptor) apply(attr string) {
	switch attr {
	case "bold":
		d.Style = d.Style.Bold(true)
	case "italic":
		d.Style = d.Style.Italic(true)
	case "dimmed":
		d.Style = d.Style.Faint(true)
	case "underline":
		d.Style = d.Style.Underline(true)
	case "blink":
		d.Style = d.Style.Blink(true)
	case "reverse":
		d.Style = d.Style.Reverse(true)
	case "hidden":
		d.Hidden = true
	}
}

// lipgloss carries no conceal attribute; SGR 8 stays active until the
// trailing reset.
const conceal = "\x1b[8m"

// Render wraps the message in the resolved style.
func (d Descriptor) Render(s string) string {
	out := d.Style.Render(s)
	if d.Hidden {
		out = conceal + out
	}
	return out
}
