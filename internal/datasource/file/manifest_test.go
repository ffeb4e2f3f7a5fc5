package file

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dumps.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestReadManifest(t *testing.T) {
	t.Parallel()

	content := `
# nightly drop
data/JV-20240101.dat
   # weights arrive separately
data/JV-20240101-WH.dat

   data/JV-20240102.dat
`
	got, err := ReadManifest(writeManifest(t, content))
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	want := []string{
		"data/JV-20240101.dat",
		"data/JV-20240101-WH.dat",
		"data/JV-20240102.dat",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadManifest = %v, want %v", got, want)
	}
}

func TestReadManifest_OnlyComments(t *testing.T) {
	t.Parallel()

	got, err := ReadManifest(writeManifest(t, "# a\n\n   #b\n"))
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadManifest = %v, want empty", got)
	}
}

func TestReadManifest_Missing(t *testing.T) {
	t.Parallel()

	if _, err := ReadManifest(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("ReadManifest succeeded on a missing file")
	}
}
