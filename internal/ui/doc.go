// Package ui provides theme and color support for the polyroots command line.
// It defines color schemes, ANSI escape code helpers and a lipgloss panel
// used for the run summary.
//
// The package only depends on lipgloss so that presentation code in cli can
// share it without importing anything from the computation packages.
package ui
