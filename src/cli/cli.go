// Package cli scans the raw process arguments for the tokens the wrapper
// reacts to before the wrapped command ever runs: quiet flags, the
// "i mean <role>" transformation request, and "please" begging.
package cli

// Args is the result of scanning the raw arguments.
type Args struct {
	Quiet   bool     // --quiet or -q appeared anywhere
	NewRole string   // role transformation request, empty if none
	Pleases int      // number of "please" tokens stripped
	Command []string // wrapped command tokens, ready to execute
}

// Scan walks the arguments after the program name. When running as a cargo
// subcommand, cargo re-passes its own name as the first argument and it is
// dropped here.
func Scan(args []string, subcommand bool) *Args {
	a := &Args{
		Quiet:   hasQuietFlag(args),
		NewRole: roleRequest(args),
	}

	rest := args
	if subcommand && len(rest) > 0 && rest[0] == "cargo" {
		rest = rest[1:]
	}

	for _, tok := range rest {
		if tok == "please" {
			a.Pleases++
			continue
		}
		a.Command = append(a.Command, tok)
	}
	return a
}

func hasQuietFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--quiet" || arg == "-q" {
			return true
		}
	}
	return false
}

// roleRequest looks for the literal token sequence "i mean <role>".
func roleRequest(args []string) string {
	for i := 0; i+2 < len(args); i++ {
		if args[i] == "i" && args[i+1] == "mean" {
			return args[i+2]
		}
	}
	return ""
}
