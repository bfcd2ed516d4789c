// Package composer fills a chosen phrase template with values drawn from the
// configuration. Every placeholder occurrence gets its own independent
// random draw.
package composer

import (
	"strings"

	"mommy/src/config"
	"mommy/src/picker"
)

// Hard fallbacks for the pathological case of an empty selection list. The
// config loader guarantees non-empty lists, so these should never surface.
const (
	fallbackRole    = "mommy"
	fallbackPronoun = "her"
	fallbackLittle  = "girl"
	fallbackEmote   = "💖"
)

// Fill substitutes the recognized placeholders in template. Unrecognized
// {...} text passes through unchanged, and newlines become single spaces.
func Fill(template string, cfg *config.Config) string {
	var b strings.Builder
	rest := template
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		rest = rest[i:]

		token, replacement, ok := match(rest, cfg)
		if !ok {
			b.WriteByte('{')
			rest = rest[1:]
			continue
		}
		b.WriteString(replacement)
		rest = rest[len(token):]
	}
	return strings.ReplaceAll(b.String(), "\n", " ")
}

func match(s string, cfg *config.Config) (token, replacement string, ok bool) {
	switch {
	case strings.HasPrefix(s, "{roles}"):
		return "{roles}", pickOr(cfg.Roles, fallbackRole), true
	case strings.HasPrefix(s, "{pronouns}"):
		return "{pronouns}", pickOr(cfg.Pronouns, fallbackPronoun), true
	case strings.HasPrefix(s, "{little}"):
		return "{little}", pickOr(cfg.Little, fallbackLittle), true
	case strings.HasPrefix(s, "{emotes}"):
		return "{emotes}", pickOr(cfg.Emotes, fallbackEmote), true
	}
	return "", "", false
}

func pickOr(list []string, fallback string) string {
	if v, ok := picker.Pick(list); ok {
		return v
	}
	return fallback
}
