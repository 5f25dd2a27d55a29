// Package report renders the human-facing outcome of a build run.
//
// The report goes to stdout: one line per target, the firmware files
// present in the output directory, and instructions for getting them onto
// the keyboard. Informational logging stays on stderr; this package owns
// what the user acts on.
package report
