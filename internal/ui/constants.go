// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// GutterWidth is the width of each carousel's left/right arrow column.
	GutterWidth = 3

	// TitleHeight is the space for a carousel title + blank separator.
	TitleHeight = 2

	// ProgressHeight is the row holding a carousel's progress bar.
	ProgressHeight = 1

	// HeaderHeight is the page header row.
	HeaderHeight = 1

	// HelpHeight is the key hint row at the bottom of the page.
	HelpHeight = 1

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
