package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestWithDefaultCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: nil, want: []string{"search"}},
		{name: "flags only", args: []string{"-g", "10"}, want: []string{"search", "-g", "10"}},
		{name: "named command", args: []string{"bench", "-g", "5"}, want: []string{"bench", "-g", "5"}},
		{name: "help", args: []string{"--help"}, want: []string{"--help"}},
		{name: "version flag", args: []string{"--version"}, want: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, withDefaultCommand(tt.args))
		})
	}
}

func TestPrintHelpTextListsCommandsInOrder(t *testing.T) {
	root := &cobra.Command{Use: "primesearch"}
	for _, c := range []*cobra.Command{
		{Use: "watch", Short: "Live dashboard"},
		{Use: "search", Short: "Search for primes"},
		{Use: "version", Short: "Show version information"},
	} {
		root.AddCommand(c)
	}

	var buf bytes.Buffer
	printHelpText(&buf, root)
	out := buf.String()

	require.Contains(t, out, "USAGE:\n    primesearch [COMMAND] [OPTIONS]")
	search := bytes.Index(buf.Bytes(), []byte("    search "))
	watch := bytes.Index(buf.Bytes(), []byte("    watch "))
	ver := bytes.Index(buf.Bytes(), []byte("    version "))
	require.True(t, search >= 0 && search < watch && watch < ver, out)
	require.NotContains(t, out, "bench")
}
