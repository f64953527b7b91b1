package decimate

import "github.com/chazu/lignin-geo/pkg/geom"

// StopCriterion is the decimator's stop-criterion strategy object:
// given a candidate collapse's midpoint and error, Accept reports
// whether the collapse should proceed.
type StopCriterion interface {
	Accept(midpoint geom.Vec3, err float64) bool
}

// ConstantError rejects any collapse whose error exceeds a fixed
// tolerance.
type ConstantError struct {
	MaxError float64
}

func (c ConstantError) Accept(_ geom.Vec3, err float64) bool {
	return err <= c.MaxError
}

// RadiusError is one (radius, max error) sample of a BoundingSphere
// stop criterion's piecewise-linear tolerance curve.
type RadiusError struct {
	Radius   float64
	MaxError float64
}

// BoundingSphere derives the accepted error at a collapse's midpoint
// from a piecewise-linear interpolation over Stops (sorted ascending
// by Radius, centred at Center). Outside the largest radius, no
// decimation is permitted.
type BoundingSphere struct {
	Center geom.Vec3
	Stops  []RadiusError
}

func (b BoundingSphere) Accept(midpoint geom.Vec3, err float64) bool {
	if len(b.Stops) == 0 {
		return false
	}
	d := geom.Length(geom.Sub(midpoint, b.Center))

	if d <= b.Stops[0].Radius {
		return err <= b.Stops[0].MaxError
	}
	last := b.Stops[len(b.Stops)-1]
	if d > last.Radius {
		return false
	}

	for i := 1; i < len(b.Stops); i++ {
		lo, hi := b.Stops[i-1], b.Stops[i]
		if d <= hi.Radius {
			span := hi.Radius - lo.Radius
			if span <= 0 {
				return err <= hi.MaxError
			}
			t := (d - lo.Radius) / span
			max := lo.MaxError + t*(hi.MaxError-lo.MaxError)
			return err <= max
		}
	}
	return err <= last.MaxError
}
