package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/tylr-r/crossword-studio/engine"
)

const maxCellSize = 12.0 // mm

// RenderPuzzlePDF renders a printable puzzle: the grid with its cell
// numbers, then the Across and Down clue lists. withSolution writes the
// letters into the cells.
func RenderPuzzlePDF(p *Puzzle, withSolution bool) ([]byte, error) {
	layout := p.Layout
	if layout == nil || layout.Rows == 0 || layout.Cols == 0 {
		return nil, fmt.Errorf("puzzle %s has no layout", p.ID)
	}

	title := p.Name
	if title == "" {
		title = "Crossword"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	if withSolution {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, "Solution", "", 1, "C", false, 0, "")
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	cell := usable / float64(layout.Cols)
	if cell > maxCellSize {
		cell = maxCellSize
	}
	x0 := left + (usable-cell*float64(layout.Cols))/2
	y0 := pdf.GetY() + 4

	pdf.SetDrawColor(0, 0, 0)
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Cols; c++ {
			letter := layout.Grid[r][c]
			if letter == "" {
				continue
			}
			x := x0 + cell*float64(c)
			y := y0 + cell*float64(r)
			pdf.Rect(x, y, cell, cell, "D")

			if n := layout.NumbersMap[r][c]; n > 0 {
				pdf.SetFont("Helvetica", "", cell*0.55)
				pdf.Text(x+cell*0.08, y+cell*0.28, strconv.Itoa(n))
			}
			if withSolution {
				pdf.SetFont("Helvetica", "B", cell*1.4)
				w := pdf.GetStringWidth(letter)
				pdf.Text(x+(cell-w)/2, y+cell*0.75, letter)
			}
		}
	}

	pdf.SetY(y0 + cell*float64(layout.Rows) + 10)
	writeClueList(pdf, "Across", layout.AcrossClues)
	writeClueList(pdf, "Down", layout.DownClues)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeClueList(pdf *fpdf.Fpdf, heading string, clues []engine.ClueRef) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, ref := range clues {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s (%d)", ref.Number, ref.Clue, ref.Length), "", "L", false)
	}
	pdf.Ln(4)
}
