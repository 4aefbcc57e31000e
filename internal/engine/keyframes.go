package engine

import "fmt"

// Vec2 is a point in scene space, in world units.
type Vec2 struct {
	X, Y float64
}

// Curve is a scalar keyframe curve with unevenly spaced keyframes.
// Samples are linearly interpolated between neighboring keys and clamped
// outside the keyframe range, so a curve shorter than its clip holds its
// last value until the clip wraps.
type Curve struct {
	times  []float64
	values []float64
}

func NewCurve(times, values []float64) (*Curve, error) {
	if err := checkKeyframes(times, len(values)); err != nil {
		return nil, err
	}
	return &Curve{times: times, values: values}, nil
}

// Duration returns the time of the last keyframe.
func (c *Curve) Duration() float64 {
	return c.times[len(c.times)-1]
}

// Sample evaluates the curve at t.
func (c *Curve) Sample(t float64) float64 {
	i, frac := segment(c.times, t)
	if frac == 0 {
		return c.values[i]
	}
	return lerp(c.values[i], c.values[i+1], frac)
}

// PointCurve is a 2D keyframe curve, interpolated component-wise.
type PointCurve struct {
	times  []float64
	points []Vec2
}

func NewPointCurve(times []float64, points []Vec2) (*PointCurve, error) {
	if err := checkKeyframes(times, len(points)); err != nil {
		return nil, err
	}
	return &PointCurve{times: times, points: points}, nil
}

// Duration returns the time of the last keyframe.
func (c *PointCurve) Duration() float64 {
	return c.times[len(c.times)-1]
}

// Sample evaluates the curve at t.
func (c *PointCurve) Sample(t float64) Vec2 {
	i, frac := segment(c.times, t)
	if frac == 0 {
		return c.points[i]
	}
	a, b := c.points[i], c.points[i+1]
	return Vec2{
		X: lerp(a.X, b.X, frac),
		Y: lerp(a.Y, b.Y, frac),
	}
}

func checkKeyframes(times []float64, values int) error {
	if len(times) == 0 {
		return fmt.Errorf("keyframes: no keys")
	}
	if len(times) != values {
		return fmt.Errorf("keyframes: %d times for %d values", len(times), values)
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return fmt.Errorf("keyframes: times not ascending at index %d", i)
		}
	}
	return nil
}

// segment locates the keyframe segment containing t. It returns the index of
// the segment start and the interpolation fraction within it; frac is 0 when
// t clamps onto a key (including before the first and after the last).
func segment(times []float64, t float64) (int, float64) {
	if t <= times[0] {
		return 0, 0
	}
	last := len(times) - 1
	if t >= times[last] {
		return last, 0
	}
	for i := 1; i <= last; i++ {
		if t < times[i] {
			span := times[i] - times[i-1]
			return i - 1, (t - times[i-1]) / span
		}
	}
	return last, 0
}

func lerp(a, b, frac float64) float64 {
	return a + (b-a)*frac
}
