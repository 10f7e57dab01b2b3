// Package automap draws the top-down level map: viewport and zoom limits, line clipping,
// wall and thing classification, player arrows, grid and marks.
//
// The package is single-threaded. Tick advances the authoritative per-tic state and Draw
// renders an interpolated copy of it without mutating anything Tick owns.
package automap
