package testsupport

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ArchiveEntry describes one member of a generated archive. Names ending in
// "/" are directories.
type ArchiveEntry struct {
	Name     string
	Body     []byte
	Modified time.Time
}

// WriteZip creates a zip archive at path with the given entries.
func WriteZip(t testing.TB, path string, entries ...ArchiveEntry) {
	t.Helper()

	f := createArchiveFile(t, path)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, entry := range entries {
		header := &zip.FileHeader{Name: entry.Name, Method: zip.Deflate}
		if !entry.Modified.IsZero() {
			header.Modified = entry.Modified
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			t.Fatalf("zip header %s: %v", entry.Name, err)
		}
		if _, err := w.Write(entry.Body); err != nil {
			t.Fatalf("zip write %s: %v", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
}

// WriteTar creates a tar archive at path; gzipped when compress is true.
func WriteTar(t testing.TB, path string, compress bool, entries ...ArchiveEntry) {
	t.Helper()

	f := createArchiveFile(t, path)
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(f)
		w = gz
	}
	tw := tar.NewWriter(w)
	for _, entry := range entries {
		mod := entry.Modified
		if mod.IsZero() {
			mod = time.Now()
		}
		header := &tar.Header{
			Name:    entry.Name,
			Mode:    0o644,
			Size:    int64(len(entry.Body)),
			ModTime: mod,
		}
		if len(entry.Name) > 0 && entry.Name[len(entry.Name)-1] == '/' {
			header.Typeflag = tar.TypeDir
			header.Mode = 0o755
			header.Size = 0
		} else {
			header.Typeflag = tar.TypeReg
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("tar header %s: %v", entry.Name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := tw.Write(entry.Body); err != nil {
				t.Fatalf("tar write %s: %v", entry.Name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close: %v", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			t.Fatalf("gzip close: %v", err)
		}
	}
}

func createArchiveFile(t testing.TB, path string) *os.File {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	return f
}
