// Package shell runs the wrapped command and captures its exit code. Three
// modes exist: needy (the argument is the exit code), cargo subcommand
// (re-invoke cargo with a bumped recursion counter), and plain shell.
package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"mommy/src/config"
	merrors "mommy/src/errors"
)

const recursionEnv = "CARGO_MOMMY_RECURSION_LIMIT"

// Execute runs the wrapped command per the configured mode and returns the
// exit code to propagate. A non-nil error means the command could not run at
// all, not that it failed.
func Execute(cfg *config.Config, args []string) (int, error) {
	switch {
	case cfg.Needy:
		return NeedyCode(args)
	case cfg.IsSubcommand:
		return runCargo(cfg, args)
	default:
		return runShell(cfg, args)
	}
}

// NeedyCode parses the sole argument as the exit code to pretend the wrapped
// command produced.
func NeedyCode(args []string) (int, error) {
	if len(args) == 0 {
		return 0, &merrors.ValidationError{
			Field:   "exit_code",
			Message: "missing exit code",
		}
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, &merrors.ValidationError{
			Field:   "exit_code",
			Value:   args[0],
			Message: "not an integer",
		}
	}
	return code, nil
}

func runCargo(cfg *config.Config, args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("no cargo command provided")
	}

	cmd := exec.Command("cargo", args...)
	wireStdio(cmd)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%d", recursionEnv, cfg.Recursion+1))
	return runAndCode(cmd)
}

func runShell(cfg *config.Config, args []string) (int, error) {
	cmd := exec.Command("bash", "-c", CommandLine(cfg.AliasesPath, args))
	wireStdio(cmd)
	return runAndCode(cmd)
}

// CommandLine joins the wrapped command into one shell line. A configured
// alias script gets sourced with alias expansion enabled first.
func CommandLine(aliasesPath string, args []string) string {
	line := strings.Join(args, " ")
	if aliasesPath != "" {
		line = fmt.Sprintf("shopt -s expand_aliases; source %q; eval %s",
			aliasesPath, line)
	}
	return line
}

func wireStdio(cmd *exec.Cmd) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
}

// runAndCode maps the child's termination onto an exit code. Abnormal
// termination counts as 1.
func runAndCode(cmd *exec.Cmd) (int, error) {
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, nil
	}
	return 0, merrors.WrapWithContext(err, "failed to run wrapped command")
}
