/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/primesearch/cmd"
	"github.com/cristianoliveira/primesearch/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command. versionString supplies the text.
func NewVersionCmd(versionString func() string) *cobra.Command {
	if versionString == nil {
		panic("NewVersionCmd: versionString dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of primesearch.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(c.OutOrStdout(), "primesearch version %s\n", versionString())
			return err
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(version.String))
}
