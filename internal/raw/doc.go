// Package raw provides the format vocabulary for SPICE .raw waveform files.
//
// This package contains type definitions and classification only. All other
// internal packages import raw; raw imports nothing internal. This keeps the
// format model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Sample equality is exact component-wise float comparison, never
//     tolerance-based. Step-boundary detection in the decoder depends on
//     bit-identical recurrence of the first X sample of a sweep.
//   - SimulationStats carries both header-declared counts (Variables,
//     Points) and decode-derived counts (Steps, StepSize).
package raw
