package model

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// RenderAliveGrid writes the padded grid as rows of 1 (alive) and 0 (dead)
func (b *Board) RenderAliveGrid(w io.Writer) error {
	return b.render(w, "--------alive/dead--------", func(c *Cell) string {
		if c.alive {
			return "1"
		}
		return "0"
	})
}

// RenderNeighborCountGrid writes the cached neighbour count of every padded cell
func (b *Board) RenderNeighborCountGrid(w io.Writer) error {
	return b.render(w, "--------neighbor count--------", func(c *Cell) string {
		return fmt.Sprintf("%d", c.count)
	})
}

// RenderStateGrid writes alive(count) pairs for every padded cell
func (b *Board) RenderStateGrid(w io.Writer) error {
	return b.render(w, "--------alive/dead(neighbor count)--------", func(c *Cell) string {
		bit := 0
		if c.alive {
			bit = 1
		}
		return fmt.Sprintf("%d(%d)", bit, c.count)
	})
}

// RenderRelationCountGrid writes relations(count) pairs, which makes wiring
// mistakes visible: interior cells must show 8, the border 0.
func (b *Board) RenderRelationCountGrid(w io.Writer) error {
	return b.render(w, "--------relations(neighbor count)--------", func(c *Cell) string {
		return fmt.Sprintf("%d(%d)", c.n, c.count)
	})
}

func (b *Board) render(w io.Writer, banner string, cell func(*Cell) string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, banner)
	for y := range b.height {
		for x := range b.width {
			if x > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(cell(&b.cells[b.index(x, y)]))
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[render] failed to write grid")
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the logical area of the board as blocks
func (r *TerminalRenderer) Display(w io.Writer, b *Board) error {
	bw := bufio.NewWriter(w)
	for y := range b.Height() {
		for x := range b.Width() {
			if b.Alive(x, y) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Display] failed to write grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear(w io.Writer) error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = w
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
