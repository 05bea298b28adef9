/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/primesearch/cmd"
	"github.com/cristianoliveira/primesearch/internal/colors"
	"github.com/cristianoliveira/primesearch/internal/interrupt"
	"github.com/cristianoliveira/primesearch/internal/report"
	"github.com/cristianoliveira/primesearch/internal/search"
	"github.com/cristianoliveira/primesearch/internal/tui"
	"github.com/spf13/cobra"
)

var watchDefaults = search.Config{
	MajorInterval: 1_000_000,
	MinorInterval: 10_000,
}

// NewWatchCmd creates the watch command. opts are appended to the program
// options after the command's output writer.
func NewWatchCmd(listen listenFunc, opts ...tea.ProgramOption) *cobra.Command {
	if listen == nil {
		panic("NewWatchCmd: listen dependency cannot be nil")
	}

	var flags searchFlags
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Search for primes behind a live dashboard",
		Long: `Search for prime numbers behind a live dashboard.

Press q, esc or Ctrl+C to stop the search. The final session report is
printed once the dashboard closes.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, listener, err := prepare(c, &flags, watchDefaults, listen)
			if err != nil {
				return err
			}
			defer listener.Stop()

			// structured logs on stderr would tear the dashboard
			colors.DisableStructuredLogging()
			defer colors.EnableStructuredLogging()

			programOpts := append([]tea.ProgramOption{tea.WithOutput(c.OutOrStdout())}, opts...)
			p := tea.NewProgram(tui.New(listener.Trigger), programOpts...)

			done := make(chan search.Result, 1)
			go func() {
				session := search.NewSession(cfg,
					search.WithReporter(sessionReporter(tui.NewReporter(p.Send), io.Discard)),
					search.WithCancel(listener.C()),
				)
				done <- session.Run(commandContext(c))
			}()

			_, runErr := p.Run()
			listener.Trigger()
			result := <-done
			if runErr != nil {
				return fmt.Errorf("run dashboard: %w", runErr)
			}

			text := report.NewTextReporter(c.OutOrStdout())
			text.Session(result.Report())
			return nil
		},
	}
	flags.register(watchCmd, watchDefaults)
	return watchCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewWatchCmd(interrupt.Listen))
}
