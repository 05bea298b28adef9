/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/

// Package cmd holds the root command shared by the primesearch binary.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/primesearch/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "primesearch",
	Short:         "Search for prime numbers by trial division.",
	Long:          `Search for prime numbers by trial division and report progress as it goes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// DefaultCommand runs when no subcommand is named.
const DefaultCommand = "search"

// Execute runs the root command with args, defaulting to the search command
// when the first argument is a flag or missing.
func Execute(args []string) error {
	RootCmd.SetArgs(withDefaultCommand(args))
	return RootCmd.Execute()
}

func withDefaultCommand(args []string) []string {
	if len(args) == 0 {
		return []string{DefaultCommand}
	}
	first := args[0]
	if first == "-h" || first == "--help" || first == "--version" {
		return args
	}
	if strings.HasPrefix(first, "-") {
		return append([]string{DefaultCommand}, args...)
	}
	return args
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd.OutOrStdout(), cmd)
	})
}

func printHelpText(w io.Writer, cmd *cobra.Command) {
	commandOrder := []string{
		"search",
		"bench",
		"watch",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	_, _ = fmt.Fprintf(w, `primesearch v%s

Search for prime numbers by trial division.

USAGE:
    primesearch [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -c, --max-candidate <n>   Stop before testing candidate n
    -g, --goal <n>            Stop after finding n primes
    -m, --major <n>           Primes between major reports (0 disables)
    -n, --minor <n>           Primes between minor rows (0 disables)
    -i, --header <n>          Minor rows between headers (0 disables)
    -h, --help                Show help message

Running without a command is the same as "primesearch search".
`, version.String(), strings.Join(cmdLines, "\n"))
}
