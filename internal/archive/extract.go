package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nwaples/rardecode"

	"sorter/internal/classify"
	"sorter/internal/fileutil"
	"sorter/internal/services"
)

// ErrInvalidArchive is the marker for malformed or hostile archives.
var ErrInvalidArchive = services.ErrInvalidArchive

// Options controls extraction.
type Options struct {
	// RestoreTimes stamps extracted files with the modification time stored
	// in the archive.
	RestoreTimes bool
}

// Result summarizes an extraction.
type Result struct {
	Kind    classify.ArchiveKind
	Files   int
	Dirs    int
	Skipped int
}

// Extract unpacks the archive at path into dest, which must already exist.
// The container type is chosen by file name.
func Extract(path, dest string, opts Options) (Result, error) {
	kind := classify.ArchiveKindOf(filepath.Base(path))
	x := &extractor{dest: dest, opts: opts, result: Result{Kind: kind}}

	var err error
	switch kind {
	case classify.KindZip:
		err = x.zip(path)
	case classify.KindTar:
		err = x.tarFile(path, false)
	case classify.KindTarGzip:
		err = x.tarFile(path, true)
	case classify.KindRar:
		err = x.rar(path)
	default:
		return x.result, fmt.Errorf("%w: %s is not a supported archive", ErrInvalidArchive, filepath.Base(path))
	}
	return x.result, err
}

type extractor struct {
	dest   string
	opts   Options
	result Result
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArchive, fmt.Sprintf(format, args...))
}

// target resolves an entry name to a path inside dest.
func (x *extractor) target(name string) (string, error) {
	cleaned := strings.TrimPrefix(filepath.ToSlash(name), "./")
	cleaned = strings.TrimSuffix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", nil
	}
	local := filepath.FromSlash(cleaned)
	if !filepath.IsLocal(local) {
		return "", invalid("entry %q escapes the extraction directory", name)
	}
	return filepath.Join(x.dest, local), nil
}

func (x *extractor) mkdir(name string) error {
	dir, err := x.target(name)
	if err != nil || dir == "" {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	x.result.Dirs++
	return nil
}

func (x *extractor) writeFile(name string, r io.Reader, mode fs.FileMode, mod time.Time) error {
	path, err := x.target(name)
	if err != nil {
		return err
	}
	if path == "" {
		return invalid("file entry %q has no name", name)
	}

	src := &trackingReader{r: r}
	if _, err := fileutil.WriteStream(path, src, mode); err != nil {
		if src.err != nil {
			_ = os.Remove(path)
			return invalid("read entry %q: %v", name, src.err)
		}
		if errors.Is(err, fs.ErrExist) {
			return invalid("duplicate entry %q", name)
		}
		return fmt.Errorf("write entry %q: %w", name, err)
	}
	if x.opts.RestoreTimes && !mod.IsZero() {
		if err := os.Chtimes(path, mod, mod); err != nil {
			return fmt.Errorf("restore time for %q: %w", name, err)
		}
	}
	x.result.Files++
	return nil
}

func (x *extractor) zip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if zr != nil {
			zr.Close()
		}
		return openError(path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		mode := f.Mode()
		switch {
		case mode.IsDir():
			if err := x.mkdir(f.Name); err != nil {
				return err
			}
			continue
		case !mode.IsRegular():
			if _, err := x.target(f.Name); err != nil {
				return err
			}
			x.result.Skipped++
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return invalid("open entry %q: %v", f.Name, err)
		}
		err = x.writeFile(f.Name, rc, mode, f.Modified)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) tarFile(path string, gzipped bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return invalid("gzip header: %v", err)
		}
		defer gz.Close()
		r = gz
	}
	return x.tar(tar.NewReader(r))
}

func (x *extractor) tar(tr *tar.Reader) error {
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return invalid("read tar header: %v", err)
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := x.mkdir(header.Name); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := x.writeFile(header.Name, tr, header.FileInfo().Mode(), header.ModTime); err != nil {
				return err
			}
		default:
			if _, err := x.target(header.Name); err != nil {
				return err
			}
			x.result.Skipped++
		}
	}
}

func (x *extractor) rar(path string) error {
	rr, err := rardecode.OpenReader(path, "")
	if err != nil {
		return openError(path, err)
	}
	defer rr.Close()

	for {
		header, err := rr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return invalid("read rar header: %v", err)
		}
		if header.IsDir {
			if err := x.mkdir(header.Name); err != nil {
				return err
			}
			continue
		}
		if err := x.writeFile(header.Name, rr, 0o644, header.ModificationTime); err != nil {
			return err
		}
	}
}

// openError keeps filesystem failures as-is and marks everything else as a
// format problem.
func openError(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return err
	}
	return invalid("open %s: %v", filepath.Base(path), err)
}

type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		t.err = err
	}
	return n, err
}
