package render

import (
	"io"
	"strings"
)

// Text renders a row-major grid of cell values as lines of glyphs, one rune per
// cell. Values without a glyph print as '?'.
func Text(cells []uint8, w int, glyphs string) string {
	var sb strings.Builder
	_ = WriteText(&sb, cells, w, glyphs)
	return sb.String()
}

// WriteText streams the glyph rendering of cells to out.
func WriteText(out io.Writer, cells []uint8, w int, glyphs string) error {
	if w <= 0 {
		return nil
	}
	table := []rune(glyphs)
	line := make([]rune, 0, w+1)
	for start := 0; start < len(cells); start += w {
		end := min(start+w, len(cells))
		line = line[:0]
		for _, c := range cells[start:end] {
			if int(c) < len(table) {
				line = append(line, table[c])
			} else {
				line = append(line, '?')
			}
		}
		line = append(line, '\n')
		if _, err := io.WriteString(out, string(line)); err != nil {
			return err
		}
	}
	return nil
}
