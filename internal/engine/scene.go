package engine

import (
	"math"

	"github.com/gogpu/gg"
)

// Scene is the animated demo scene: a planet traveling a square path with a
// satellite orbiting it at a fixed distance, pulsing in scale. All curves
// loop over the clip duration.
type Scene struct {
	planetPath *PointCurve
	orbitAngle *Curve
	satScale   *Curve
}

// SceneState is the scene evaluated at one instant, in world units.
type SceneState struct {
	Planet     Vec2
	Satellite  Vec2
	OrbitAngle float64
	SatScale   float64
}

const (
	planetRadius = 0.5
	orbitRadius  = 1.5
	satSide      = 0.5

	// One scene unit maps to min(w,h)/unitsAcross pixels.
	unitsAcross = 6.0
)

func NewScene() *Scene {
	// Square translation path, one edge per second.
	planetPath, err := NewPointCurve(
		[]float64{0, 1, 2, 3, 4},
		[]Vec2{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}, {1, 1}},
	)
	if err != nil {
		panic(err)
	}

	// Quarter-turn orbit per second, back to start at the end of the clip.
	orbitAngle, err := NewCurve(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi},
	)
	if err != nil {
		panic(err)
	}

	// Satellite size pulses between 0.8 and 1.2 every half second.
	satScale, err := NewCurve(
		[]float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4},
		[]float64{0.8, 1.2, 0.8, 1.2, 0.8, 1.2, 0.8, 1.2, 0.8},
	)
	if err != nil {
		panic(err)
	}

	return &Scene{
		planetPath: planetPath,
		orbitAngle: orbitAngle,
		satScale:   satScale,
	}
}

// Duration returns the clip length in seconds.
func (s *Scene) Duration() float64 {
	return s.planetPath.Duration()
}

// State evaluates the scene at elapsed time t, wrapping over the clip.
func (s *Scene) State(t float64) SceneState {
	tt := math.Mod(t, s.Duration())
	if tt < 0 {
		tt += s.Duration()
	}

	planet := s.planetPath.Sample(tt)
	angle := s.orbitAngle.Sample(tt)
	satellite := Vec2{
		X: planet.X + orbitRadius*math.Cos(angle),
		Y: planet.Y + orbitRadius*math.Sin(angle),
	}

	return SceneState{
		Planet:     planet,
		Satellite:  satellite,
		OrbitAngle: angle,
		SatScale:   s.satScale.Sample(tt),
	}
}

// Draw renders the scene at elapsed time t onto dc.
func (s *Scene) Draw(dc *gg.Context, t float64) {
	state := s.State(t)

	dc.ClearWithColor(gg.RGB(0.02, 0.02, 0.04))

	px, py := worldToScreen(dc.Width(), dc.Height(), state.Planet)
	scale := pixelsPerUnit(dc.Width(), dc.Height())

	// Orbit guide.
	dc.SetRGBA(1, 1, 1, 0.12)
	dc.SetLineWidth(1)
	dc.DrawCircle(px, py, orbitRadius*scale)
	dc.Stroke()

	// Planet.
	dc.SetRGB(0.8, 0.7, 0.6)
	dc.DrawCircle(px, py, planetRadius*scale)
	dc.Fill()

	// Satellite: a square spinning with its own orbit angle.
	sx, sy := worldToScreen(dc.Width(), dc.Height(), state.Satellite)
	half := satSide / 2 * state.SatScale * scale

	dc.Push()
	dc.RotateAbout(state.OrbitAngle, sx, sy)
	dc.SetRGB(0.3, 0.9, 0.3)
	dc.DrawRectangle(sx-half, sy-half, 2*half, 2*half)
	dc.Fill()
	dc.Pop()
}

func pixelsPerUnit(w, h int) float64 {
	m := w
	if h < m {
		m = h
	}
	return float64(m) / unitsAcross
}

// worldToScreen maps scene coordinates (origin centered, Y up) to pixels.
func worldToScreen(w, h int, p Vec2) (float64, float64) {
	scale := pixelsPerUnit(w, h)
	return float64(w)/2 + p.X*scale, float64(h)/2 - p.Y*scale
}
