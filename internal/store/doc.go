// Package store provides SQLite-backed persistence for decoded waveform
// runs.
//
// One run is one successful decode of a .raw file: its header metadata and
// stats, the declared variables, and every decoded sample including the
// independent "x" series. Downstream analysis tooling queries runs by ID,
// so samples are keyed (run, variable, step, index) and series reads are
// index-ordered.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Run IDs are UUIDv7 so lexical ordering follows import time.
package store
