package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the location of the test data relative to this package, for
// tests that rewrite golden files.
const Dir = "internal/testutil/testdata"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Glob returns the base names of the embedded test files matching pattern.
func Glob(pattern string) ([]string, error) {
	matches, err := fs.Glob(TestdataFS, path.Join("testdata", pattern))
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = path.Base(m)
	}
	return names, nil
}
