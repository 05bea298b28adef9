package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// filePrefix is the name prefix shared by every log file this package writes.
const filePrefix = "primesearch_"

// rotate removes the oldest primesearch_*.log files in dir so that at most
// maxFiles-1 remain, leaving room for the file about to be created.
func rotate(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var logFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, ".log") {
			logFiles = append(logFiles, filepath.Join(dir, name))
		}
	}
	keep := maxFiles - 1
	if len(logFiles) <= keep {
		return nil
	}
	// Oldest first; fall back to lexical order when stat fails.
	sort.Slice(logFiles, func(i, j int) bool {
		info1, err1 := os.Stat(logFiles[i])
		info2, err2 := os.Stat(logFiles[j])
		if err1 != nil || err2 != nil {
			return logFiles[i] < logFiles[j]
		}
		return info1.ModTime().Before(info2.ModTime())
	})
	for i := 0; i < len(logFiles)-keep; i++ {
		os.Remove(logFiles[i])
	}
	return nil
}
