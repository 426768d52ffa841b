package geom

// SignedArea returns twice the signed area of the triangle (p0, p1, p2):
//
//	(p0.X-p2.X)*(p1.Y-p2.Y) - (p1.X-p2.X)*(p0.Y-p2.Y)
//
// The sign encodes the orientation of the triangle: positive if the points
// make a counterclockwise turn, negative if clockwise, and zero if they are
// collinear. This is the primitive both sweep-line comparators are built on.
func SignedArea(p0, p1, p2 Vertex) float64 {
	return (p0.x-p2.x)*(p1.y-p2.y) - (p1.x-p2.x)*(p0.y-p2.y)
}
