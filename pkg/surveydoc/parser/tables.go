package parser

// dataWidth returns the number of columns up to and including the rightmost
// non-empty cell of any row. It is 0 when every cell is empty.
func dataWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		for col := len(row) - 1; col >= width; col-- {
			if row[col] != "" {
				width = col + 1
				break
			}
		}
	}
	return width
}
