package layout

import "math"

// CellAspect converts a horizontal length into terminal rows.
// Terminal cells are roughly twice as tall as they are wide.
const CellAspect = 0.5

// MinCardRows keeps a card tall enough for a title and one line of body.
const MinCardRows = 4

// ContentOpts contains the fixed-height page chrome around the carousels.
type ContentOpts struct {
	HeaderHeight int
	StatusHeight int // 0 when there is no status message
	HelpHeight   int
}

// ContentHeight calculates the rows left for carousel sections.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	height -= opts.HelpHeight
	return max(height, 0)
}

// CardRows converts a card height into whole terminal rows.
func CardRows(cardHeight float64) int {
	if cardHeight <= 0 {
		return 0
	}
	return max(int(math.Round(cardHeight*CellAspect)), MinCardRows)
}

// SectionOpts describes the rows a carousel section draws around its cards.
type SectionOpts struct {
	TitleHeight    int
	ProgressHeight int
	BottomGap      int
}

// SectionHeight returns the total rows of a carousel section.
func SectionHeight(cardRows int, opts SectionOpts) int {
	return opts.TitleHeight + cardRows + opts.ProgressHeight + opts.BottomGap
}

// SectionTop returns the 0-based row where section i starts,
// given the heights of all sections stacked from row top.
func SectionTop(heights []int, top, i int) int {
	row := top
	for j := 0; j < i && j < len(heights); j++ {
		row += heights[j]
	}
	return row
}

// SectionAt returns the index of the section containing row y, or -1.
func SectionAt(heights []int, top, y int) int {
	if y < top {
		return -1
	}
	row := top
	for i, h := range heights {
		if y < row+h {
			return i
		}
		row += h
	}
	return -1
}
