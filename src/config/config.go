// Package config resolves the full option set for one run. Options are
// layered: built-in defaults, then the optional TOML settings file, then
// environment variables. Loading never fails; anything absent or malformed
// falls back to its default.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"mommy/src/role"
)

const legacyPrefix = "SHELL_MOMMYS"

// Suffixes resolved through the prefixed lookup chain.
var envSuffixes = map[string]string{
	"pronouns":     "PRONOUNS",
	"roles":        "ROLES",
	"little":       "LITTLE",
	"emotes":       "EMOTES",
	"color":        "COLOR",
	"style":        "STYLE",
	"color_rgb":    "COLOR_RGB",
	"aliases":      "ALIASES",
	"affirmations": "AFFIRMATIONS",
	"needy":        "NEEDY",
	"moods":        "MOODS",
	"mood_mixing":  "MOOD_MIXING",
	"mood_state":   "MOOD_STATE",
}

// Config is an immutable snapshot of everything one run needs. Only Quiet is
// adjusted after construction, once the arguments have been scanned.
type Config struct {
	Pronouns []string
	Roles    []string
	Little   []string
	Emotes   []string
	Moods    []string
	Colors   []string
	ColorRGB []string // nil when COLOR_RGB was never provided
	Styles   [][]string

	Needy        bool
	OnlyNegative bool
	Quiet        bool
	MoodMixing   bool
	MoodState    bool

	AffirmationsPath string
	AliasesPath      string

	// Recursion is the counter injected by a parent invocation of this
	// same tool, despite the variable being named RECURSION_LIMIT.
	Recursion uint64

	Binary       string
	Role         string
	IsSubcommand bool
}

// Load resolves the configuration for the currently running binary.
func Load() *Config {
	return LoadFor(executableName())
}

// LoadFor resolves the configuration as if the binary had the given name.
func LoadFor(binaryName string) *Config {
	r := role.Detect(binaryName)
	sub := role.IsCargoSubcommand(binaryName)

	v := viper.New()
	setDefaults(v, r)
	applySettings(v)
	bindEnv(v, r, sub)

	cfg := &Config{
		Binary:       binaryName,
		Role:         r,
		IsSubcommand: sub,
	}

	cfg.Pronouns = listOrDefault(v.GetString("pronouns"), "her")
	cfg.Roles = listOrDefault(v.GetString("roles"), r)
	cfg.Little = listOrDefault(v.GetString("little"), "girl")
	cfg.Emotes = listOrDefault(v.GetString("emotes"), "💖")
	cfg.Moods = listOrDefault(v.GetString("moods"), "chill")
	cfg.Colors = listOrDefault(v.GetString("color"), "white")
	cfg.Styles = stylesOrDefault(v.GetString("style"))

	if raw := v.GetString("color_rgb"); raw != "" {
		cfg.ColorRGB = append([]string{}, ParseList(raw)...)
	}

	cfg.AffirmationsPath = v.GetString("affirmations")
	cfg.AliasesPath = v.GetString("aliases")

	cfg.Needy = v.GetString("needy") == "1"
	cfg.MoodMixing = v.GetString("mood_mixing") == "1"
	cfg.MoodState = v.GetString("mood_state") == "1"

	// ONLY_NEGATIVE and RECURSION_LIMIT use fixed names with both prefixes
	// checked directly, not the fallback chain.
	cfg.OnlyNegative = os.Getenv("CARGO_MOMMY_ONLY_NEGATIVE") == "1" ||
		os.Getenv("SHELL_MOMMY_ONLY_NEGATIVE") == "1"

	rec := os.Getenv("CARGO_MOMMY_RECURSION_LIMIT")
	if rec == "" {
		rec = os.Getenv("SHELL_MOMMY_RECURSION_LIMIT")
	}
	cfg.Recursion, _ = strconv.ParseUint(rec, 10, 64)

	return cfg
}

// EnvPrefix returns the primary environment-variable prefix for a binary
// identity: CARGO_<ROLE>S when running as a cargo subcommand, otherwise the
// legacy SHELL_MOMMYS prefix.
func EnvPrefix(roleName string, subcommand bool) string {
	if subcommand {
		return "CARGO_" + strings.ToUpper(roleName) + "S"
	}
	return legacyPrefix
}

func setDefaults(v *viper.Viper, roleName string) {
	v.SetDefault("pronouns", "her")
	v.SetDefault("roles", roleName)
	v.SetDefault("little", "girl")
	v.SetDefault("emotes", "💖/💗/💓/💞")
	v.SetDefault("color", "white")
	v.SetDefault("style", "bold")
	v.SetDefault("moods", "chill")
}

// applySettings layers the optional TOML settings file under the environment
// by installing its values as viper defaults.
func applySettings(v *viper.Viper) {
	settings, err := LoadSettings()
	if err != nil {
		log.Printf("Warning: Failed to load settings file: %v", err)
		return
	}

	for key, value := range settings.values() {
		if value != "" {
			v.SetDefault(key, value)
		}
	}
}

func bindEnv(v *viper.Viper, roleName string, subcommand bool) {
	prefix := EnvPrefix(roleName, subcommand)
	for key, suffix := range envSuffixes {
		names := []string{key, prefix + "_" + suffix}
		if subcommand {
			names = append(names, legacyPrefix+"_"+suffix)
		}
		v.BindEnv(names...)
	}
}

// ParseList splits a slash-delimited selection string into lowercase trimmed
// tokens, dropping empties.
func ParseList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, "/") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ParseStyleCombos splits a style source string into combinations: outer
// split on "/", inner split on ",".
func ParseStyleCombos(s string) [][]string {
	var out [][]string
	for _, combo := range strings.Split(s, "/") {
		var attrs []string
		for _, attr := range strings.Split(combo, ",") {
			attr = strings.ToLower(strings.TrimSpace(attr))
			if attr != "" {
				attrs = append(attrs, attr)
			}
		}
		if len(attrs) > 0 {
			out = append(out, attrs)
		}
	}
	return out
}

// Selection lists must never be empty, so random picks always have a
// candidate.
func listOrDefault(src string, fallback string) []string {
	if list := ParseList(src); len(list) > 0 {
		return list
	}
	return []string{fallback}
}

func stylesOrDefault(src string) [][]string {
	if combos := ParseStyleCombos(src); len(combos) > 0 {
		return combos
	}
	return [][]string{{"bold"}}
}

func executableName() string {
	exe, err := os.Executable()
	if err != nil {
		return "mommy"
	}
	return filepath.Base(exe)
}
