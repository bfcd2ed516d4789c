package config

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every option variable so ambient shell configuration
// cannot leak into assertions. Viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	suffixes := []string{
		"PRONOUNS", "ROLES", "LITTLE", "EMOTES", "COLOR", "STYLE",
		"COLOR_RGB", "ALIASES", "AFFIRMATIONS", "NEEDY", "MOODS",
		"MOOD_MIXING", "MOOD_STATE",
	}
	for _, s := range suffixes {
		t.Setenv("SHELL_MOMMYS_"+s, "")
		t.Setenv("CARGO_MOMMYS_"+s, "")
		t.Setenv("CARGO_DADDYS_"+s, "")
	}
	t.Setenv("SHELL_MOMMY_ONLY_NEGATIVE", "")
	t.Setenv("CARGO_MOMMY_ONLY_NEGATIVE", "")
	t.Setenv("SHELL_MOMMY_RECURSION_LIMIT", "")
	t.Setenv("CARGO_MOMMY_RECURSION_LIMIT", "")

	// point the settings file somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadFor("mommy")

	assert.Equal(t, []string{"her"}, cfg.Pronouns)
	assert.Equal(t, []string{"mommy"}, cfg.Roles)
	assert.Equal(t, []string{"girl"}, cfg.Little)
	assert.Equal(t, []string{"💖", "💗", "💓", "💞"}, cfg.Emotes)
	assert.Equal(t, []string{"chill"}, cfg.Moods)
	assert.Equal(t, []string{"white"}, cfg.Colors)
	assert.Equal(t, [][]string{{"bold"}}, cfg.Styles)
	assert.Nil(t, cfg.ColorRGB)
	assert.Empty(t, cfg.AffirmationsPath)
	assert.Empty(t, cfg.AliasesPath)
	assert.False(t, cfg.Needy)
	assert.False(t, cfg.OnlyNegative)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.MoodMixing)
	assert.EqualValues(t, 0, cfg.Recursion)
	assert.Equal(t, "mommy", cfg.Role)
	assert.False(t, cfg.IsSubcommand)
}

func TestCustomVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELL_MOMMYS_PRONOUNS", "His / Their")
	t.Setenv("SHELL_MOMMYS_ROLES", "daddy")
	t.Setenv("SHELL_MOMMYS_COLOR_RGB", "255,0,0/0,255,0")
	t.Setenv("SHELL_MOMMYS_NEEDY", "1")
	t.Setenv("SHELL_MOMMY_ONLY_NEGATIVE", "1")
	t.Setenv("SHELL_MOMMYS_MOODS", "ominous / thirsty")

	cfg := LoadFor("mommy")

	assert.Equal(t, []string{"his", "their"}, cfg.Pronouns)
	assert.Equal(t, []string{"daddy"}, cfg.Roles)
	assert.Equal(t, []string{"255,0,0", "0,255,0"}, cfg.ColorRGB)
	assert.True(t, cfg.Needy)
	assert.True(t, cfg.OnlyNegative)
	assert.Equal(t, []string{"ominous", "thirsty"}, cfg.Moods)
}

func TestCargoPrefixWithFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARGO_DADDYS_PRONOUNS", "their")
	t.Setenv("SHELL_MOMMYS_LITTLE", "boy")

	cfg := LoadFor("cargo-daddy")

	require.True(t, cfg.IsSubcommand)
	assert.Equal(t, "daddy", cfg.Role)
	// primary prefix wins where set
	assert.Equal(t, []string{"their"}, cfg.Pronouns)
	// legacy prefix serves as fallback in subcommand mode
	assert.Equal(t, []string{"boy"}, cfg.Little)
	// roles default follows the detected role
	assert.Equal(t, []string{"daddy"}, cfg.Roles)
}

func TestLegacyPrefixIgnoredOutsideSubcommandMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("CARGO_MOMMYS_PRONOUNS", "their")

	cfg := LoadFor("mommy")
	assert.Equal(t, []string{"her"}, cfg.Pronouns)
}

func TestBoolRequiresLiteralOne(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELL_MOMMYS_NEEDY", "true")
	t.Setenv("SHELL_MOMMYS_MOOD_MIXING", "yes")

	cfg := LoadFor("mommy")
	assert.False(t, cfg.Needy)
	assert.False(t, cfg.MoodMixing)
}

func TestEmptyListFallsBackToSingleElement(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELL_MOMMYS_MOODS", "/// /")

	cfg := LoadFor("mommy")
	assert.Equal(t, []string{"chill"}, cfg.Moods)
}

func TestRecursionCounter(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHELL_MOMMY_RECURSION_LIMIT", "17")
	assert.EqualValues(t, 17, LoadFor("mommy").Recursion)

	t.Setenv("SHELL_MOMMY_RECURSION_LIMIT", "abc")
	assert.EqualValues(t, 0, LoadFor("mommy").Recursion)
}

func TestEnvPrefix(t *testing.T) {
	assert.Equal(t, "SHELL_MOMMYS", EnvPrefix("mommy", false))
	assert.Equal(t, "CARGO_MOMMYS", EnvPrefix("mommy", true))
	assert.Equal(t, "CARGO_DADDYS", EnvPrefix("daddy", true))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, ParseList("one / two/three "))
	assert.Empty(t, ParseList("/// /"))
	assert.Empty(t, ParseList(""))
}

func TestParseStyleCombos(t *testing.T) {
	combos := ParseStyleCombos("bold,italic / underline")
	assert.Equal(t, [][]string{{"bold", "italic"}, {"underline"}}, combos)

	assert.Empty(t, ParseStyleCombos(" , / ,"))
}
