// Package yearinfo determines the year a file belongs to.
//
// Photos are dated by the EXIF DateTimeOriginal tag when one is present and
// well formed. Everything else, and every photo without usable EXIF data, is
// dated by its modification time in local time.
package yearinfo
