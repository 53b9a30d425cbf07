// Package kv contains the byte-level key/value repositories that back the
// TaskFlow local store.
//
// Implementations:
//
//   - SQLiteRepository: the default, a single-file database (modernc.org/sqlite)
//   - PostgresRepository: a shared database reached through pgx
//   - RedisRepository: keys namespaced by a prefix
//   - MemoryRepository: process-local, used by tests and "-s memory"
//
// Get returns (nil, nil) for a missing key. Errors are wrapped with the key
// they relate to; the localstore package decides how to degrade on them.
package kv
