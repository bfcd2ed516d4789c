package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"mommy/src/affirmations"
	"mommy/src/cli"
	"mommy/src/composer"
	"mommy/src/config"
	"mommy/src/moodstate"
	"mommy/src/picker"
	"mommy/src/role"
	"mommy/src/shell"
	"mommy/src/styler"
)

// A parent invocation bumps the counter by one each time; past this many
// nested runs something is re-invoking us in a loop.
const recursionLimit = 100

const missingAffirmations = "{roles} failed to load any affirmations, {little}~ {emotes}"

func runMommy(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if cfg.Recursion >= recursionLimit {
		fmt.Fprintln(os.Stderr, "Recursion limit exceeded! Mommy is stuck in a loop~")
		os.Exit(2)
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage(cfg))
		os.Exit(1)
	}

	scanned := cli.Scan(args, cfg.IsSubcommand)
	cfg.Quiet = cfg.Quiet || scanned.Quiet

	if scanned.NewRole != "" {
		path, err := role.Transform(scanned.NewRole)
		if err != nil {
			return err
		}
		fmt.Printf("Created new binary: %s\n", path)
		fmt.Printf("You can now use: %s\n", scanned.NewRole)
		return nil
	}

	mood, ok := picker.Pick(cfg.Moods)
	if !ok {
		mood = "chill"
	}

	code, err := shell.Execute(cfg, scanned.Command)
	if err != nil {
		return err
	}

	if cfg.MoodState {
		recordRun(cfg, mood, code, scanned.Pleases)
	}

	phrases, show := phrasesFor(cfg, resolveSet(cfg, mood), code)
	if !show {
		os.Exit(code)
	}

	template, ok := picker.Pick(phrases)
	if !ok {
		template = missingAffirmations
	}

	d := styler.Resolve(cfg)
	gracefulPrint(d.Render(composer.Fill(template, cfg)))
	os.Exit(code)
	return nil
}

func usage(cfg *config.Config) string {
	switch {
	case cfg.IsSubcommand:
		return fmt.Sprintf("usage: cargo %s <cargo command> [args...]", cfg.Role)
	case cfg.Needy:
		return fmt.Sprintf("usage: %s <exit code>", cfg.Binary)
	default:
		return fmt.Sprintf("usage: %s <command> [args...]", cfg.Binary)
	}
}

// resolveSet loads the phrase table for the run. A configured custom file
// that cannot be loaded yields nil rather than the built-ins; the caller
// degrades to the fixed error phrase.
func resolveSet(cfg *config.Config, mood string) *affirmations.Set {
	if cfg.AffirmationsPath != "" {
		return affirmations.LoadCustomMixing(cfg.AffirmationsPath, mood, cfg.MoodMixing)
	}
	return affirmations.LoadMixing(mood, cfg.MoodMixing)
}

// phrasesFor decides whether anything gets printed after the wrapped command
// and, if so, which phrase list to draw from. A nil set shows the fixed
// error phrase via the empty-pick fallback.
func phrasesFor(cfg *config.Config, set *affirmations.Set, code int) ([]string, bool) {
	if cfg.Quiet {
		return nil, false
	}
	if code == 0 && cfg.OnlyNegative {
		return nil, false
	}
	if set == nil {
		return nil, true
	}
	if code == 0 {
		return set.Positive, true
	}
	return set.Negative, true
}

func recordRun(cfg *config.Config, mood string, code, pleases int) {
	store, err := moodstate.Open(config.MoodDBPath())
	if err != nil {
		log.Printf("Warning: mood tracking unavailable: %v", err)
		return
	}
	defer store.Close()

	err = store.Record(moodstate.Run{
		Role:     cfg.Role,
		Mood:     mood,
		ExitCode: code,
		Pleases:  pleases,
	})
	if err != nil {
		log.Printf("Warning: failed to record run: %v", err)
	}
}

// gracefulPrint writes the affirmation to stderr so it never mixes into the
// wrapped command's stdout. A write failure (closed pipe) is not worth
// clobbering the exit code over.
func gracefulPrint(s string) {
	if _, err := fmt.Fprintln(os.Stderr, s); err != nil {
		os.Exit(0)
	}
}
