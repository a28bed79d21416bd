package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanMapDirectory returns the paths of all JSON map files in dir, sorted by name.
// Subdirectories and hidden files are skipped.
func ScanMapDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var maps []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if strings.HasSuffix(strings.ToLower(name), ".json") {
			maps = append(maps, filepath.Join(dir, name))
		}
	}

	sort.Strings(maps)
	return maps, nil
}

// LoadMapDirectory loads the first two maps of dir as variants A and B.
// A directory with a single map uses it for both variants.
func LoadMapDirectory(dir string) (a, b *Map, err error) {
	paths, err := ScanMapDirectory(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no map files found in %s", dir)
	}

	a, err = LoadMap(paths[0])
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 1 {
		return a, a, nil
	}

	b, err = LoadMap(paths[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
