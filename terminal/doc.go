// Package terminal speaks ANSI over an arbitrary byte stream.
//
// It has no knowledge of the local tty: callers hand it an io.Writer for output
// and feed it raw input bytes, which makes it usable over SSH channels as well as pipes.
//
// Output is a grid of half-block cells diffed against the previous frame, so each
// character cell carries two vertically stacked pixels. Input decoding covers CSI and
// SS3 key sequences, control characters, UTF-8 runes and SGR mouse reports.
package terminal
