// Package journal provides an append-only SQLite log of played sessions.
//
// Each interactive run opens one session (identified by a UUIDv7) and records
// every processed menu command as a move, including rejected ones, together
// with the container snapshots after the command.
//
// The journal is audit-only. Nothing reads it back into a game: every run
// starts from a fresh queue and an empty reserve.
//
// # Ordering
//
// Moves are stamped with a logical seq from Clock, never wall time. The clock
// resumes from the highest stored seq when a database is reopened, so seq is
// unique across all sessions in one file. Reads always ORDER BY seq.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package journal
