package classify

import "strings"

// ArchiveKind identifies a supported archive container.
type ArchiveKind int

const (
	KindNone ArchiveKind = iota
	KindZip
	KindTar
	KindTarGzip
	KindRar
)

func (k ArchiveKind) String() string {
	switch k {
	case KindZip:
		return "zip"
	case KindTar:
		return "tar"
	case KindTarGzip:
		return "tar.gz"
	case KindRar:
		return "rar"
	default:
		return "none"
	}
}

// ArchiveKindOf detects archives by name. Archive detection runs before
// category lookup for every sort method.
func ArchiveKindOf(name string) ArchiveKind {
	stem, ext := SplitExt(name)
	switch lower(ext) {
	case ".gz":
		if strings.HasSuffix(lower(stem), ".tar") {
			return KindTarGzip
		}
		return KindNone
	case ".tgz":
		return KindTarGzip
	case ".zip":
		return KindZip
	case ".tar":
		return KindTar
	case ".rar":
		return KindRar
	default:
		return KindNone
	}
}

// IsArchive reports whether name has a supported archive extension.
func IsArchive(name string) bool {
	return ArchiveKindOf(name) != KindNone
}
