package cli

import (
	"errors"
	"strings"
)

// ErrNoCommand is returned when no command is provided after "run"
var ErrNoCommand = errors.New("no command provided: usage: envguard run [flags] <command> [args...]")

// ErrNoSubcommand is returned when neither "run" nor "check" is provided
var ErrNoSubcommand = errors.New("missing subcommand: usage: envguard <run|check> [flags] [command] [args...]")

// ErrMissingFlagValue is returned when a flag requires a value but none is provided
var ErrMissingFlagValue = errors.New("flag requires a value")

// Subcommand represents the CLI subcommand
type Subcommand string

const (
	SubcommandRun   Subcommand = "run"
	SubcommandCheck Subcommand = "check"
)

// Command represents the parsed CLI input
type Command struct {
	Subcommand Subcommand // "run" or "check"
	Target     string     // The command to execute (e.g., "node") - only for run
	Args       []string   // Arguments to pass (e.g., ["index.js"]) - only for run

	SchemaPath   string // --schema <path>
	ArtifactFile string // --artifact-file <path>
	NoInject     bool   // --no-inject
	DryRun       bool   // --dry-run
	CIMode       bool   // --ci
	JSONOutput   bool   // --json
}

// ParseArgs parses CLI arguments into a Command. It expects args to be
// os.Args[1:]. Flags must precede the target command; everything from
// the first non-flag argument on is passed through to the target
// untouched, so the wrapped command's own flags are never consumed.
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, ErrNoSubcommand
	}

	subcommand := args[0]
	if subcommand != "run" && subcommand != "check" {
		return Command{}, ErrNoSubcommand
	}

	cmd := Command{
		Subcommand: Subcommand(subcommand),
	}

	i := 1 // Start after subcommand

	for i < len(args) {
		arg := args[i]

		if strings.HasPrefix(arg, "--") {
			flagName := strings.TrimPrefix(arg, "--")

			switch flagName {
			case "schema":
				if i+1 >= len(args) {
					return Command{}, ErrMissingFlagValue
				}
				i++
				cmd.SchemaPath = args[i]
			case "artifact-file":
				if i+1 >= len(args) {
					return Command{}, ErrMissingFlagValue
				}
				i++
				cmd.ArtifactFile = args[i]
			case "no-inject":
				cmd.NoInject = true
			case "dry-run":
				cmd.DryRun = true
			case "ci":
				cmd.CIMode = true
			case "json":
				cmd.JSONOutput = true
			default:
				// Unknown flag - treat as start of command
				break
			}
			i++
			continue
		}

		// Not a flag - this is the command (only for run subcommand)
		cmd.Target = arg
		if i+1 < len(args) {
			cmd.Args = args[i+1:]
		}
		break
	}

	if cmd.Subcommand == SubcommandRun && cmd.Target == "" && !cmd.DryRun {
		return Command{}, ErrNoCommand
	}

	return cmd, nil
}
