// Package history journals what each sort run did in SQLite.
//
// Every move, failed move, and archive outcome becomes one row keyed by the
// run identifier. The journal is informational: nothing reads it back to
// drive the organizer, and `sorter history` is its only consumer.
//
// Schema changes bump schemaVersion, stored as PRAGMA user_version. Users
// delete the database to adopt a new schema.
package history
