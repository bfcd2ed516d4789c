package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Settings mirrors the optional config.toml file. Every field corresponds to
// one of the environment options and acts as a default below the environment
// layer.
type Settings struct {
	Pronouns     string `toml:"pronouns"`
	Roles        string `toml:"roles"`
	Little       string `toml:"little"`
	Emotes       string `toml:"emotes"`
	Color        string `toml:"color"`
	Style        string `toml:"style"`
	ColorRGB     string `toml:"color_rgb"`
	Aliases      string `toml:"aliases"`
	Affirmations string `toml:"affirmations"`
	Moods        string `toml:"moods"`
	Needy        bool   `toml:"needy"`
	MoodMixing   bool   `toml:"mood_mixing"`
	MoodState    bool   `toml:"mood_state"`
}

// LoadSettings reads the settings file from the default location. A missing
// file is not an error; the zero Settings simply contributes nothing.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// LoadSettingsFrom reads a settings file from an explicit path.
func LoadSettingsFrom(path string) (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// values maps the settings onto the option keys used by the loader. Booleans
// use the same "1" convention as the environment.
func (s *Settings) values() map[string]string {
	m := map[string]string{
		"pronouns":     s.Pronouns,
		"roles":        s.Roles,
		"little":       s.Little,
		"emotes":       s.Emotes,
		"color":        s.Color,
		"style":        s.Style,
		"color_rgb":    s.ColorRGB,
		"aliases":      s.Aliases,
		"affirmations": s.Affirmations,
		"moods":        s.Moods,
	}
	if s.Needy {
		m["needy"] = "1"
	}
	if s.MoodMixing {
		m["mood_mixing"] = "1"
	}
	if s.MoodState {
		m["mood_state"] = "1"
	}
	return m
}
