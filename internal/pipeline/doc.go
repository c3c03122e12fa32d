// Package pipeline runs one generator end to end: pick the catalog, build
// the corpus, report progress and the summary, re-inventory the target
// directory, and write the optional manifest.
//
// The builder returns structured records; everything printed here is derived
// from them, and [ExitCode] decides whether fallbacks affect the process
// status.
package pipeline
