package analyzer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/c0depwn/jackfront/pkg/slices"
)

// SourceExtension is the file extension of Jack source files.
const SourceExtension = ".jack"

var ErrNoSources = errors.New("no " + SourceExtension + " files found")

// Discover resolves paths into the list of source files to analyze.
// A path is either a source file or a directory, a directory contributes
// its top-level source files in lexical order. Duplicates are dropped.
func Discover(paths ...string) ([]string, error) {
	var (
		sources []string
		seen    = make(map[string]struct{})
	)

	for _, path := range paths {
		found, err := discover(path)
		if err != nil {
			return nil, err
		}
		for _, source := range found {
			if _, ok := seen[source]; ok {
				continue
			}
			seen[source] = struct{}{}
			sources = append(sources, source)
		}
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	return sources, nil
}

func discover(path string) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access '%s': %w", path, err)
	}

	if !stat.IsDir() {
		if !isSource(path) {
			return nil, fmt.Errorf("'%s' is not a %s file", path, SourceExtension)
		}
		return []string{filepath.Clean(path)}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory '%s': %w", path, err)
	}

	entries = slices.Filter(entries, func(e os.DirEntry) bool {
		return e.Type().IsRegular() && isSource(e.Name())
	})
	if len(entries) == 0 {
		return nil, fmt.Errorf("'%s': %w", path, ErrNoSources)
	}

	sources := slices.Map(entries, func(e os.DirEntry) string {
		return filepath.Join(path, e.Name())
	})
	sort.Strings(sources)

	return sources, nil
}

func isSource(path string) bool {
	return filepath.Ext(path) == SourceExtension
}
