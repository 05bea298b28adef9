/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/cristianoliveira/primesearch/cmd"
	"github.com/cristianoliveira/primesearch/internal/colors"
	"github.com/cristianoliveira/primesearch/internal/config"
	"github.com/cristianoliveira/primesearch/internal/hooks"
	"github.com/cristianoliveira/primesearch/internal/interrupt"
	"github.com/cristianoliveira/primesearch/internal/logging"
	"github.com/cristianoliveira/primesearch/internal/report"
	"github.com/cristianoliveira/primesearch/internal/search"
	"github.com/spf13/cobra"
)

// listenFunc installs the interrupt handler for a command.
type listenFunc func(signals ...os.Signal) (*interrupt.Listener, error)

// mode is a named set of defaults for the search flags.
type mode struct {
	name     string
	short    string
	long     string
	defaults search.Config
	banner   bool
}

var (
	searchMode = mode{
		name:  "search",
		short: "Search for primes and print progress reports",
		long: `Search for prime numbers by trial division.

A minor row is printed every --minor primes, a major summary every --major
primes and the table header every --header minor rows. The search runs until
--max-candidate is reached, --goal primes are found or Ctrl+C is pressed.`,
		defaults: search.Config{
			MajorInterval:  10_000_000,
			MinorInterval:  100_000,
			HeaderInterval: 50,
		},
		banner: true,
	}
	benchMode = mode{
		name:  "bench",
		short: "Time the search up to a fixed prime count",
		long: `Time the search up to a fixed prime count.

Runs without the startup banner and stops after --goal primes.`,
		defaults: search.Config{
			PrimeGoal:      1_000_000,
			MajorInterval:  100_000,
			MinorInterval:  10_000,
			HeaderInterval: 25,
		},
	}
)

// searchFlags holds the raw values of the search flags.
type searchFlags struct {
	maxCandidate uint32
	goal         uint32
	major        uint32
	minor        uint32
	header       uint32
}

func (f *searchFlags) register(c *cobra.Command, defaults search.Config) {
	fl := c.Flags()
	fl.Uint32VarP(&f.maxCandidate, "max-candidate", "c", defaults.MaxCandidate, "Stop before testing this candidate (0 for no ceiling)")
	fl.Uint32VarP(&f.goal, "goal", "g", defaults.PrimeGoal, "Stop after finding this many primes (0 for no goal)")
	fl.Uint32VarP(&f.major, "major", "m", defaults.MajorInterval, "Primes between major reports (0 disables)")
	fl.Uint32VarP(&f.minor, "minor", "n", defaults.MinorInterval, "Primes between minor rows (0 disables)")
	fl.Uint32VarP(&f.header, "header", "i", defaults.HeaderInterval, "Minor rows between table headers (0 disables)")
}

// resolve picks each value from an explicit flag, then the loaded
// configuration, then the mode default.
func (f *searchFlags) resolve(c *cobra.Command, defaults search.Config) search.Config {
	pick := func(flag, key string, value, def uint32) uint32 {
		if c.Flags().Changed(flag) {
			return value
		}
		return config.GetUint32(key, def)
	}
	return search.Config{
		MaxCandidate:   pick("max-candidate", "max_candidate", f.maxCandidate, defaults.MaxCandidate),
		PrimeGoal:      pick("goal", "prime_goal", f.goal, defaults.PrimeGoal),
		MajorInterval:  pick("major", "major_interval", f.major, defaults.MajorInterval),
		MinorInterval:  pick("minor", "minor_interval", f.minor, defaults.MinorInterval),
		HeaderInterval: pick("header", "header_interval", f.header, defaults.HeaderInterval),
	}
}

// prepare loads configuration and logging and installs the interrupt handler
// shared by every search-running command.
func prepare(c *cobra.Command, flags *searchFlags, defaults search.Config, listen listenFunc) (search.Config, *interrupt.Listener, error) {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	cfg := flags.resolve(c, defaults)

	if err := logging.InitGlobal(); err != nil {
		colors.Warning("file logging disabled:", err.Error())
	}

	listener, err := listen(os.Interrupt, syscall.SIGTERM)
	if err != nil {
		return cfg, nil, fmt.Errorf("install interrupt handler: %w", err)
	}
	return cfg, listener, nil
}

// sessionReporter fans events out to primary, the file log and the
// configured hook scripts.
func sessionReporter(primary report.Reporter, hookOutput io.Writer) report.Multi {
	runner := hooks.NewFromConfig()
	runner.Output = hookOutput
	return report.Multi{primary, report.NewLogReporter(logging.GetGlobal()), hooks.NewReporter(runner)}
}

func commandContext(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// NewSearchCmd creates a search-running command for the given mode.
func NewSearchCmd(m mode, listen listenFunc) *cobra.Command {
	if listen == nil {
		panic("NewSearchCmd: listen dependency cannot be nil")
	}

	var flags searchFlags
	searchCmd := &cobra.Command{
		Use:   m.name,
		Short: m.short,
		Long:  m.long,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, listener, err := prepare(c, &flags, m.defaults, listen)
			if err != nil {
				return err
			}
			defer listener.Stop()

			text := report.NewTextReporter(c.OutOrStdout())
			text.Banner = m.banner
			session := search.NewSession(cfg,
				search.WithReporter(sessionReporter(text, c.ErrOrStderr())),
				search.WithCancel(listener.C()),
			)
			session.Run(commandContext(c))
			return nil
		},
	}
	flags.register(searchCmd, m.defaults)
	return searchCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewSearchCmd(searchMode, interrupt.Listen))
	cmd.RootCmd.AddCommand(NewSearchCmd(benchMode, interrupt.Listen))
}
