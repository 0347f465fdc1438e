package line

// Bresenham line walking, adapted from
// https://github.com/StephaneBunel/bresenham/blob/master/drawline.go

// Visit is called for each integer cell along a line.
// Return false to stop the walk early.
type Visit func(x, y int) bool

// Walk calls visit for every cell on the line (x1,y1) -> (x2,y2).
// Nb. cells are visited in x-axis order, not necessarily starting
// from (x1,y1).
func Walk(x1, y1, x2, y2 int, visit Visit) {
	var dx, dy, e, slope int

	// walking p1 -> p2 covers the same cells as p2 -> p1, so we sort
	// by x & handle half the cases
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	if dy < 0 {
		dy = -dy
	}

	switch {

	// a line of one cell
	case x1 == x2 && y1 == y2:
		visit(x1, y1)

	// horizontal
	case y1 == y2:
		for ; dx != 0; dx-- {
			if !visit(x1, y1) {
				return
			}
			x1++
		}
		visit(x1, y1)

	// vertical
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			if !visit(x1, y1) {
				return
			}
			y1++
		}
		visit(x1, y1)

	// diagonal
	case dx == dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		for ; dx != 0; dx-- {
			if !visit(x1, y1) {
				return
			}
			x1++
			y1 += step
		}
		visit(x2, y2)

	// wider than high
	case dx > dy:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dy, e, slope = 2*dy, dx, 2*dx
		for ; dx != 0; dx-- {
			if !visit(x1, y1) {
				return
			}
			x1++
			e -= dy
			if e < 0 {
				y1 += step
				e += slope
			}
		}
		visit(x2, y2)

	// higher than wide
	default:
		step := 1
		if y1 > y2 {
			step = -1
		}
		dx, e, slope = 2*dx, dy, 2*dy
		for ; dy != 0; dy-- {
			if !visit(x1, y1) {
				return
			}
			y1 += step
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
		visit(x2, y2)
	}
}

// Cells returns every cell on the line between the two points.
func Cells(x1, y1, x2, y2 int) [][2]int {
	out := [][2]int{}
	Walk(x1, y1, x2, y2, func(x, y int) bool {
		out = append(out, [2]int{x, y})
		return true
	})
	return out
}
