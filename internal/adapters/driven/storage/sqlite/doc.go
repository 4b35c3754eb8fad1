// Package sqlite provides SQLite-backed implementations of the storage
// ports: document and chunk persistence, index metadata, scheduler
// state, and monitor state. A single database file holds everything.
package sqlite
