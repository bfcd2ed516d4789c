// Package role resolves which persona this binary is running as, based on
// its executable name, and handles the "i mean <role>" transformation that
// copies the binary under a new persona name.
package role

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const cargoPrefix = "cargo-"

// Detect extracts the persona from a binary name. Both "cargo-daddy" and
// plain "daddy" resolve to "daddy"; everything else defaults to "mommy".
func Detect(binaryName string) string {
	name := strings.TrimPrefix(binaryName, cargoPrefix)
	if strings.Contains(name, "daddy") {
		return "daddy"
	}
	return "mommy"
}

// IsCargoSubcommand reports whether the binary name follows the cargo
// subcommand naming convention ("cargo-<role>").
func IsCargoSubcommand(binaryName string) bool {
	return strings.HasPrefix(binaryName, cargoPrefix)
}

// Transform copies the current executable next to itself under the new
// role's name, preserving the cargo subcommand convention when running as
// one. Returns the path of the new binary.
func Transform(newRole string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate current executable: %w", err)
	}

	name := newRole
	if IsCargoSubcommand(filepath.Base(exe)) {
		name = cargoPrefix + newRole
	}
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	dst := filepath.Join(filepath.Dir(exe), name)

	if err := copyExecutable(exe, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func copyExecutable(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy binary: %w", err)
	}
	return nil
}
