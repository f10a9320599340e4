// Package sqlite provides the selfcare session store backed by SQLite.
//
// Rows hold browser-session state only; nothing from the fixture is written.
// Rows are deleted on logout and never expire otherwise.
package sqlite
