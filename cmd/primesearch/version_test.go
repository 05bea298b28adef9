package main

import (
	"testing"

	"github.com/cristianoliveira/primesearch/internal/version"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewVersionCmd(func() string { return "1.0.0+abc1234" }))
	require.NoError(t, err)
	require.Equal(t, "primesearch version 1.0.0+abc1234\n", out)
}

func TestNewVersionCmdPanicsWithoutSource(t *testing.T) {
	require.Panics(t, func() { NewVersionCmd(nil) })
}

func TestVersionCmdUsesBuildVersion(t *testing.T) {
	origVersion, origCommit := version.Version, version.Commit
	defer func() { version.Version, version.Commit = origVersion, origCommit }()
	version.Version, version.Commit = "2.1.0", "c0ffee1"

	out, err := execute(t, NewVersionCmd(version.String))
	require.NoError(t, err)
	require.Equal(t, "primesearch version 2.1.0+c0ffee1\n", out)
}
