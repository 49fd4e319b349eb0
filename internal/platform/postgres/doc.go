// Package postgres provides PostgreSQL implementations of the store
// interfaces. Implementations perform pure row mapping: no business rules
// live here, and every timestamp is normalized to UTC on both write and
// read so stored values never depend on the session timezone.
package postgres
