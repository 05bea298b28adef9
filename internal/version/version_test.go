package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func withBuild(t *testing.T, version, commit string) {
	t.Helper()
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() {
		Version, Commit = origVersion, origCommit
	})
	Version, Commit = version, commit
}

func TestStringDefaultsToDevelopment(t *testing.T) {
	require.Equal(t, "development", Version)
	require.Equal(t, "unknown", Commit)
	require.Equal(t, "development", String())
}

func TestStringAppendsCommit(t *testing.T) {
	tests := map[string]struct {
		version, commit, want string
	}{
		"release build":        {version: "1.4.0", commit: "9f2c1ab", want: "1.4.0+9f2c1ab"},
		"unknown commit":       {version: "1.4.0", commit: "unknown", want: "1.4.0"},
		"development snapshot": {version: "development", commit: "9f2c1ab", want: "development+9f2c1ab"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit)
			require.Equal(t, tt.want, String())
		})
	}
}
