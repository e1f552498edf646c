// Package session keeps the in-memory history of candidates committed
// during one process lifetime.
//
// History is the system of record. Presentation layers render the
// read-only Entry projection returned by Entries, which never carries the
// raw candidate. Raw candidates are sealed in memguard enclaves and are
// only opened to build export records. Nothing is written to disk.
package session
