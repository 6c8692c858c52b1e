// Package decoder parses SPICE .raw waveform dumps into an in-memory,
// queryable dataset.
//
// The pipeline is strictly sequential and single-pass:
//
//  1. Validate the source path (exists, regular file, .raw extension).
//  2. Read the full file into memory.
//  3. Sniff the header text encoding (UTF-8 first, then UTF-16LE) by lossy
//     decoding and looking for the "Values" / "Binary" markers.
//  4. Split header text from binary payload at the "Binary:\n" marker,
//     scaled by the encoding's code-unit width.
//  5. Tokenize the header into field/value pairs and interpret the known
//     fields (analysis mode, storage flags, counts, variable declarations).
//  6. Infer the binary layout (X and Y sample widths) and verify it against
//     the observed payload length.
//  7. Walk the payload once, emitting typed samples and detecting step
//     boundaries.
//
// Step boundaries are detected by exact recurrence of the first X sample of
// the step being built. That is an empirical property of swept simulations,
// not a documented guarantee of the file format; see decode.go.
//
// A decoded Simulation is immutable to callers and safe for concurrent
// readers. Reload replaces the dataset wholesale and must not race with
// in-flight reads of the same object.
package decoder
