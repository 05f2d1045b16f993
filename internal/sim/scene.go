package sim

// Scene is the geometry provider the session reads every tick. Snapshots
// are never cached across ticks.
type Scene interface {
	// VehicleBox returns the vehicle's axis-aligned bounding box at a pose.
	VehicleBox(p Pose) RectF
	// PlayArea returns the play-area rectangle in the vehicle's frame.
	PlayArea() RectF
	// Obstacles lists the round obstacles.
	Obstacles() []Circle
}

// Renderer receives the vehicle transform once per tick.
type Renderer interface {
	ApplyTransform(x, y, angleDeg float64)
}

// ScoreSink receives the score whenever it changes.
type ScoreSink interface {
	DisplayScore(score int)
}

// StaticScene serves a fixed track and a vehicle rectangle of known size.
type StaticScene struct {
	track              Track
	vehicleW, vehicleH float64
}

func NewStaticScene(track Track, vehicleW, vehicleH float64) *StaticScene {
	return &StaticScene{track: track, vehicleW: vehicleW, vehicleH: vehicleH}
}

// VehicleBox measures the rotated vehicle rectangle the way a browser
// reports the bounding rect of a rotated element.
func (s *StaticScene) VehicleBox(p Pose) RectF {
	return RotatedBox(p.X, p.Y, s.vehicleW, s.vehicleH, p.Angle)
}

func (s *StaticScene) PlayArea() RectF { return s.track.Bounds() }

func (s *StaticScene) Obstacles() []Circle { return s.track.Obstacles }

func (s *StaticScene) Track() Track { return s.track }

func (s *StaticScene) SetTrack(t Track) { s.track = t }

func (s *StaticScene) VehicleSize() (w, h float64) { return s.vehicleW, s.vehicleH }
