package formula

// Speed over a journey.
type Speed struct {
	Speed float64 `json:"speed"`
}

// AverageSpeed computes total distance / total time.
func AverageSpeed(distance, time float64) (Speed, error) {
	if err := requirePositive("time", time); err != nil {
		return Speed{}, err
	}
	return Speed{Speed: distance / time}, nil
}

// Acceleration over an interval, with the distance read from a speed-time graph.
type Acceleration struct {
	Acceleration float64 `json:"acceleration"`
	Distance     float64 `json:"distance"`
	Motion       string  `json:"motion"`
}

// AccelerationOf computes (v − u)/t and the area under the speed-time graph,
// ½(u + v)t.
func AccelerationOf(initial, final, time float64) (Acceleration, error) {
	if err := requirePositive("time", time); err != nil {
		return Acceleration{}, err
	}
	acc := (final - initial) / time
	motion := "uniform speed"
	switch {
	case acc > 0:
		motion = "acceleration"
	case acc < 0:
		motion = "deceleration"
	}
	return Acceleration{
		Acceleration: acc,
		Distance:     0.5 * (initial + final) * time,
		Motion:       motion,
	}, nil
}
