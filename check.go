package weave

// checkLayout panics with a *LayoutError when size falls outside limits.
// name is only called on failure.
func checkLayout(name func() string, site string, limits Limits, size Size) {
	if !debugChecks || limits.Contains(size) {
		return
	}
	panic(&LayoutError{Node: name(), Limits: limits, Size: size, Site: site})
}

// checkShrink panics with a *ShrinkError when the sub-region at topLeft
// does not fit inside available.
func checkShrink(topLeft XY, size Size, available Size) {
	if !debugChecks {
		return
	}
	if topLeft.X < 0 || topLeft.Y < 0 || size.Width < 0 || size.Height < 0 ||
		topLeft.X+size.Width > available.Width || topLeft.Y+size.Height > available.Height {
		panic(&ShrinkError{TopLeft: topLeft, Size: size, Available: available})
	}
}
