package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"envguard/internal/artifact"
	"envguard/internal/cli"
	"envguard/internal/envsource"
	"envguard/internal/evaluator"
	"envguard/internal/injector"
	"envguard/internal/launcher"
	"envguard/internal/report"
	"envguard/internal/schema"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), "."))
}

// run orchestrates the full execution flow and returns an exit code:
// 0 valid, 1 validation failure, 2 usage error, 3 schema missing or
// unparseable, 126 permission denied, 127 command not found. Separated
// from main() so tests can drive it without spawning a process.
func run(args []string, environ []string, defaultSchemaDir string) int {
	cmd, err := cli.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}

	schemaPath := resolveSchemaPath(cmd.SchemaPath, environ, defaultSchemaDir)

	s, err := schema.LoadFromPath(schemaPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "schema file not found: %s\n", schemaPath)
			return 3
		}
		fmt.Fprintf(os.Stderr, "failed to parse schema: %v\n", err)
		return 3
	}

	inputs := envsource.FromEnviron(environ)
	result := evaluator.Evaluate(s, inputs)

	ciMode := cmd.CIMode || getEnvBool(environ, "ENVGUARD_CI") || getEnvBool(environ, "CI")

	if !result.Valid {
		switch {
		case cmd.JSONOutput:
			out, jerr := report.FormatJSON(result)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "Error: cannot format result: %v\n", jerr)
				return 1
			}
			fmt.Println(out)
		case ciMode:
			fmt.Fprint(os.Stderr, report.FormatCI(result))
		default:
			fmt.Fprint(os.Stderr, report.FormatCLI(result))
		}
		return 1
	}

	art := artifact.Generate(result.Config)

	if cmd.ArtifactFile != "" {
		if err := art.WriteToFile(cmd.ArtifactFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot write artifact: %s: %v\n", cmd.ArtifactFile, err)
			return 1
		}
	}

	// Validation only, no execution.
	if cmd.Subcommand == cli.SubcommandCheck {
		if cmd.JSONOutput {
			out, jerr := report.FormatJSON(result)
			if jerr != nil {
				fmt.Fprintf(os.Stderr, "Error: cannot format result: %v\n", jerr)
				return 1
			}
			fmt.Println(out)
		} else {
			fmt.Println("✓ Environment valid")
		}
		return 0
	}

	if cmd.DryRun {
		fmt.Printf("Environment valid, would execute: %s %s\n", cmd.Target, strings.Join(cmd.Args, " "))
		return 0
	}

	// Make defaults and transform output visible to the child.
	if !cmd.NoInject {
		environ = injector.InjectEnv(result.Config, environ)
	}

	// Exec replaces the process, so this only returns on error.
	err = launcher.Exec(cmd.Target, cmd.Args, environ)
	if launcher.IsNotFound(err) {
		fmt.Fprintf(os.Stderr, "Error: command not found: %s\n", cmd.Target)
		return 127
	}
	if launcher.IsPermissionDenied(err) {
		fmt.Fprintf(os.Stderr, "Error: permission denied: %s\n", cmd.Target)
		return 126
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// resolveSchemaPath determines the schema path from flag, env var, or default
func resolveSchemaPath(flagValue string, environ []string, defaultDir string) string {
	if flagValue != "" {
		if filepath.IsAbs(flagValue) {
			return flagValue
		}
		return filepath.Join(defaultDir, flagValue)
	}

	for _, env := range environ {
		if strings.HasPrefix(env, "ENVGUARD_SCHEMA=") {
			path := strings.TrimPrefix(env, "ENVGUARD_SCHEMA=")
			if filepath.IsAbs(path) {
				return path
			}
			return filepath.Join(defaultDir, path)
		}
	}

	return filepath.Join(defaultDir, "envguard.yaml")
}

// getEnvBool checks if an environment variable is set to a truthy value
func getEnvBool(environ []string, name string) bool {
	prefix := name + "="
	for _, env := range environ {
		if strings.HasPrefix(env, prefix) {
			val := strings.ToLower(strings.TrimPrefix(env, prefix))
			return val == "true" || val == "1" || val == "yes"
		}
	}
	return false
}
