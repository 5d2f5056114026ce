package pixbuf

// circleRingThreshold is how far (in squared-distance units) beyond r*r a
// pixel may lie and still belong to a circle outline. Pixels inside r*r are
// never part of the outline.
const circleRingThreshold = 5

// clipSpan intersects the half-open span [lo, hi) with [0, limit).
func clipSpan(lo, hi, limit int) (int, int) {
	return max(lo, 0), min(hi, limit)
}

// DrawRect draws the outline of the rectangle at (x, y) of size w x h.
//
// The top and bottom edges lie on rows y and y+h and span columns [x, x+w);
// the left and right edges lie on columns x and x+w and span rows [y, y+h).
// Pixels outside the buffer are skipped individually. Does nothing if the
// rectangle is entirely off the buffer or w or h is less than one.
func (b *PixelBuffer) DrawRect(x, y, w, h int, c Color) {
	if y >= b.height || y+h < 0 || x+w < 0 || x >= b.width {
		return
	}
	if w < 1 || h < 1 {
		return
	}

	// top and bottom lines
	x0, x1 := clipSpan(x, x+w, b.width)
	for dx := x0; dx < x1; dx++ {
		if y >= 0 {
			b.DrawPixel(dx, y, c)
		}
		if y+h < b.height {
			b.DrawPixel(dx, y+h, c)
		}
	}

	// left and right lines
	y0, y1 := clipSpan(y, y+h, b.height)
	for dy := y0; dy < y1; dy++ {
		if x >= 0 {
			b.DrawPixel(x, dy, c)
		}
		if x+w < b.width {
			b.DrawPixel(x+w, dy, c)
		}
	}
}

// FillRect fills the rectangle [x, x+w) x [y, y+h), clipped to the buffer.
// Does nothing if the rectangle is entirely off the buffer or w or h is less
// than one.
func (b *PixelBuffer) FillRect(x, y, w, h int, c Color) {
	if y >= b.height || y+h < 0 || x+w < 0 || x >= b.width {
		return
	}
	if w < 1 || h < 1 {
		return
	}

	x0, x1 := clipSpan(x, x+w, b.width)
	y0, y1 := clipSpan(y, y+h, b.height)
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			b.DrawPixel(dx, dy, c)
		}
	}
}

// DrawCircle draws the outline of the circle centered at (cx, cy).
//
// A pixel belongs to the outline when its squared distance d from the
// center satisfies r*r <= d < r*r+5. Does nothing for a negative radius or
// a circle entirely off the buffer.
func (b *PixelBuffer) DrawCircle(cx, cy, r int, c Color) {
	rr := r * r
	b.scanCircle(cx, cy, r, func(d int) bool {
		return d >= rr && d-rr < circleRingThreshold
	}, c)
}

// FillCircle fills the disk of radius r centered at (cx, cy), including
// every pixel whose squared distance from the center is at most r*r.
// Does nothing for a negative radius or a circle entirely off the buffer.
func (b *PixelBuffer) FillCircle(cx, cy, r int, c Color) {
	rr := r * r
	b.scanCircle(cx, cy, r, func(d int) bool {
		return d <= rr
	}, c)
}

// scanCircle visits the square [cx-r-1, cx+r+1]^2 clipped to the buffer and
// draws every pixel whose squared distance from the center passes hit.
func (b *PixelBuffer) scanCircle(cx, cy, r int, hit func(d int) bool, c Color) {
	if r < 0 {
		return
	}
	if cx-r-1 >= b.width || cy-r-1 >= b.height || cx+r+1 < 0 || cy+r+1 < 0 {
		return
	}

	x0, x1 := clipSpan(cx-r-1, cx+r+2, b.width)
	y0, y1 := clipSpan(cy-r-1, cy+r+2, b.height)
	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			d := (cx-dx)*(cx-dx) + (cy-dy)*(cy-dy)
			if hit(d) {
				b.DrawPixel(dx, dy, c)
			}
		}
	}
}

// DrawPolygon is not implemented. It always returns ErrNotImplemented and
// leaves the buffer untouched.
func (b *PixelBuffer) DrawPolygon(xs, ys []int, c Color) error {
	Logger().Warn("pixbuf: DrawPolygon called", "points", min(len(xs), len(ys)), "color", c)
	return ErrNotImplemented
}
