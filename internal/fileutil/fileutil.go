package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// rename is swapped in tests to simulate cross-device moves.
var rename = os.Rename

// MoveResult describes how MoveFile placed a file.
type MoveResult struct {
	// Copied is true when the rename crossed filesystems and the file was
	// copied instead.
	Copied bool
	// SourceRemoveErr is set when the copy succeeded but the original could
	// not be deleted. The destination is complete in that case.
	SourceRemoveErr error
}

// MoveFile renames src to dst, falling back to a verified copy followed by
// removal of src when the two paths live on different filesystems. dst must
// not exist; the caller picks a free name first.
func MoveFile(src, dst string) (MoveResult, error) {
	renameErr := rename(src, dst)
	if renameErr == nil {
		return MoveResult{}, nil
	}

	var linkErr *os.LinkError
	if !errors.As(renameErr, &linkErr) || !errors.Is(linkErr.Err, syscall.EXDEV) {
		return MoveResult{}, renameErr
	}

	if err := CopyFileVerified(src, dst); err != nil {
		return MoveResult{}, fmt.Errorf("cross-device copy: %w", err)
	}
	result := MoveResult{Copied: true}
	if err := os.Remove(src); err != nil {
		result.SourceRemoveErr = err
	}
	return result, nil
}

// CopyFileVerified streams src to dst, then re-reads dst from disk and
// compares its size and SHA256 with what was read from src. dst is created
// exclusively and receives the mode and modification time of src. dst is
// removed on mismatch.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}

	srcHasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHasher))
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if written != srcInfo.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
	}

	onDisk, size, err := hashFile(dst)
	if err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("verify copy: %w", err)
	}
	if size != written || !bytes.Equal(srcHasher.Sum(nil), onDisk) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: %s differs from source", dst)
	}

	mod := srcInfo.ModTime()
	return os.Chtimes(dst, mod, mod)
}

// openCopied is swapped in tests to simulate a destination that changed on disk.
var openCopied = os.Open

func hashFile(path string) ([]byte, int64, error) {
	f, err := openCopied(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return nil, n, err
	}
	return h.Sum(nil), n, nil
}

// WriteStream copies r into a new file at dst with the given permissions,
// creating parent directories. dst must not already exist.
func WriteStream(dst string, r io.Reader, mode os.FileMode) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, err
	}
	if mode.Perm() == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode.Perm())
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(out, r)
	if err != nil {
		_ = out.Close()
		return written, err
	}
	return written, out.Close()
}
