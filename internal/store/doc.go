// Package store persists transcriptions in a SQLite database so repeated
// batch entries are served without transcribing them again, and exports
// them as CSV.
package store
