package file

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadManifest reads a newline-separated list of dump paths. Blank lines and
// lines starting with '#' are skipped, so a manifest can carry comments and
// blank separators. Order is preserved; the importer processes dumps in
// manifest order.
func ReadManifest(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return paths, nil
}
