package typegen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teranos/gentypes/errors"
)

// CheckResult holds the result of a freshness check
type CheckResult struct {
	UpToDate bool `json:"upToDate"`
	// Differences lists output-relative files that would change
	Differences []string `json:"differences"`
}

// Check regenerates into a temporary location and compares it with opts.OutputLocation.
// Nothing is written to the real output and the run is not recorded.
func Check(g *Generator, opts Options) (*CheckResult, error) {
	tempDir, err := os.MkdirTemp("", "gentypes-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	fresh := opts
	fresh.ClearOutput = false
	if opts.SingleFile {
		fresh.OutputLocation = filepath.Join(tempDir, filepath.Base(opts.OutputLocation))
	} else {
		fresh.OutputLocation = filepath.Join(tempDir, "out")
	}

	if err := g.generate(fresh, g.logger); err != nil {
		return nil, errors.Wrap(err, "failed to generate types for comparison")
	}

	return CompareOutputs(fresh.OutputLocation, opts.OutputLocation, opts.SingleFile)
}

// CompareOutputs compares freshly generated output with existing output.
// In directory mode .ts files present only in the existing directory are reported as stale.
func CompareOutputs(generated, existing string, singleFile bool) (*CheckResult, error) {
	var diffs []string

	if singleFile {
		different, err := filesAreDifferent(generated, existing)
		if err != nil {
			diffs = append(diffs, filepath.Base(existing)+" ("+missingOrError(err)+")")
		} else if different {
			diffs = append(diffs, filepath.Base(existing))
		}
		return &CheckResult{UpToDate: len(diffs) == 0, Differences: diffs}, nil
	}

	diffs, err := compareDirectory(generated, existing)
	if err != nil {
		return nil, err
	}
	return &CheckResult{UpToDate: len(diffs) == 0, Differences: diffs}, nil
}

// compareDirectory returns relative paths that differ between the two directories
func compareDirectory(generatedDir, existingDir string) ([]string, error) {
	var diffs []string
	expected := make(map[string]bool)

	err := filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		relPath, err := filepath.Rel(generatedDir, path)
		if err != nil {
			return err
		}
		expected[relPath] = true

		different, err := filesAreDifferent(path, filepath.Join(existingDir, relPath))
		if err != nil {
			diffs = append(diffs, relPath+" ("+missingOrError(err)+")")
		} else if different {
			diffs = append(diffs, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", generatedDir)
	}

	// Leftovers from models that no longer exist
	entries, err := os.ReadDir(existingDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to read %s", existingDir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ts") || expected[entry.Name()] {
			continue
		}
		diffs = append(diffs, entry.Name()+" (stale)")
	}

	sort.Strings(diffs)
	return diffs, nil
}

// filesAreDifferent compares two files byte for byte
func filesAreDifferent(file1, file2 string) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}

	content2, err := os.ReadFile(file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}

	return !bytes.Equal(content1, content2), nil
}

func missingOrError(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "missing"
	}
	return "error: " + err.Error()
}
