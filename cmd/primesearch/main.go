package main

import (
	"os"

	"github.com/cristianoliveira/primesearch/cmd"
	"github.com/cristianoliveira/primesearch/internal/colors"
	"github.com/cristianoliveira/primesearch/internal/errors"
	"github.com/cristianoliveira/primesearch/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	defer func() { _ = logging.ShutdownGlobal() }()

	if err := cmd.Execute(args); err != nil {
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		return errors.NewDefaultCLIHandler().Fatal(err)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}
