// Package reveal implements the typewriter effect used across the resume.
//
// Text is split into [Unit] values, each holding a full string and a
// revealed prefix length. A [Sequence] reveals its units strictly in order:
// every [Sequence.Tick] shows exactly one more rune of the current unit, and
// the next unit only starts once the current one is complete.
//
// Two drivers move a sequence forward:
//
//   - [Revealer]: Bubble Tea driver, one [TickMsg] per rune, [DoneMsg] at the end
//   - [Run]: blocking, ticker-driven driver for plain stdout output
//
// # Reduced Motion
//
// When reduced motion is requested the sequence is finished in one step and
// its completion channel is closed before the driver returns. No
// intermediate state is ever observable.
package reveal
