package tristrip

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Rect appends a closed axis-aligned rectangle subpath.
func (p *Path) Rect(x, y, w, h float32) error {
	if err := p.MoveTo(x, y); err != nil {
		return err
	}
	if err := p.LineTo(x+w, y); err != nil {
		return err
	}
	if err := p.LineTo(x+w, y+h); err != nil {
		return err
	}
	if err := p.LineTo(x, y+h); err != nil {
		return err
	}
	p.Close()
	return nil
}

// Circle appends a closed circle subpath approximated with four cubic
// Bezier curves.
func (p *Path) Circle(cx, cy, r float32) error {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed ellipse subpath approximated with four cubic
// Bezier curves.
func (p *Path) Ellipse(cx, cy, rx, ry float32) error {
	kx := float32(kappa) * rx
	ky := float32(kappa) * ry

	if err := p.MoveTo(cx+rx, cy); err != nil {
		return err
	}
	if err := p.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry); err != nil {
		return err
	}
	if err := p.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy); err != nil {
		return err
	}
	if err := p.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry); err != nil {
		return err
	}
	if err := p.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy); err != nil {
		return err
	}
	p.Close()
	return nil
}
