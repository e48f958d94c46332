package board

// Connected reports whether every occupied cell on the board forms a
// single 4-connected component, via a flood fill from the first
// occupied cell found — the invariant a finished solution must
// satisfy. Adapted from the teacher's grid connectivity check (there
// run over black/white crossword cells from a fixed center; here run
// over occupied/empty board cells from whichever occupied cell is
// found first, since a Bananagrams board has no fixed center cell).
func (b *Board) Connected() bool {
	if !b.Occupied {
		return true
	}

	startRow, startCol, found := -1, -1, false
	total := 0
	for r := b.MinRow; r <= b.MaxRow && !found; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			if !b.IsEmptyAt(r, c) {
				startRow, startCol = r, c
				found = true
				break
			}
		}
	}
	if !found {
		return true
	}
	for r := b.MinRow; r <= b.MaxRow; r++ {
		for c := b.MinCol; c <= b.MaxCol; c++ {
			if !b.IsEmptyAt(r, c) {
				total++
			}
		}
	}

	visited := make(map[[2]int]bool)
	queue := [][2]int{{startRow, startCol}}
	visited[[2]int{startRow, startCol}] = true
	reached := 0
	directions := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		reached++

		for _, d := range directions {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			if !InBounds(nr, nc) || b.IsEmptyAt(nr, nc) {
				continue
			}
			key := [2]int{nr, nc}
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, key)
		}
	}

	return reached == total
}
