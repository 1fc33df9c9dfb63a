package neko

// MakeStep moves p exactly step units toward the pointer m.
// It may overshoot when p is closer than step. Nothing happens when p is on the pointer.
func MakeStep(p *Point, m Point, step float64) {
	d := Distance(*p, m)
	if d > 0 {
		dstep := step / d
		p.X -= dstep * (p.X - m.X)
		p.Y -= dstep * (p.Y - m.Y)
	}
}
