// Package archive unpacks zip, tar, tar.gz and rar containers into a
// directory.
//
// Extract never writes outside the destination: an entry whose name would
// escape it marks the whole archive invalid. Errors caused by the archive
// bytes themselves wrap services.ErrInvalidArchive so callers can tell a
// corrupt file from a full disk.
package archive
