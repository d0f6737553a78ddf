package train

// Reserve selects which per-iteration quantities are recorded into the
// training history. Each flag is independent; recording is skipped entirely
// for disabled quantities, which matters for long runs with large parameter
// vectors.
type Reserve struct {
	Parameters           bool `yaml:"reserve_parameters_history"`
	ParametersNorm       bool `yaml:"reserve_parameters_norm_history"`
	Performance          bool `yaml:"reserve_performance_history"`
	SelectionPerformance bool `yaml:"reserve_selection_performance_history"`
	Gradient             bool `yaml:"reserve_gradient_history"`
	GradientNorm         bool `yaml:"reserve_gradient_norm_history"`
	Direction            bool `yaml:"reserve_training_direction_history"`
	Rate                 bool `yaml:"reserve_training_rate_history"`
	ElapsedTime          bool `yaml:"reserve_elapsed_time_history"`
}

// ReserveAll returns a Reserve with every quantity enabled.
func ReserveAll() Reserve {
	return Reserve{
		Parameters:           true,
		ParametersNorm:       true,
		Performance:          true,
		SelectionPerformance: true,
		Gradient:             true,
		GradientNorm:         true,
		Direction:            true,
		Rate:                 true,
		ElapsedTime:          true,
	}
}

// History holds the recorded per-iteration quantities. Only the buffers
// whose Reserve flag was set are non-nil; each reserved buffer ends with
// exactly one entry per recorded iteration (including iteration 0).
type History struct {
	Parameters           [][]float64 `yaml:"parameters,omitempty"`
	ParametersNorm       []float64   `yaml:"parameters_norm,omitempty"`
	Performance          []float64   `yaml:"performance,omitempty"`
	SelectionPerformance []float64   `yaml:"selection_performance,omitempty"`
	Gradient             [][]float64 `yaml:"gradient,omitempty"`
	GradientNorm         []float64   `yaml:"gradient_norm,omitempty"`
	Direction            [][]float64 `yaml:"training_direction,omitempty"`
	Rate                 []float64   `yaml:"training_rate,omitempty"`
	ElapsedTime          []float64   `yaml:"elapsed_time,omitempty"`

	reserve Reserve
}

// snapshot carries one iteration's values into the history recorder.
// Vector fields are deep-copied on append so later in-place updates by the
// trainer cannot corrupt recorded entries.
type snapshot struct {
	parameters           []float64
	parametersNorm       float64
	performance          float64
	selectionPerformance float64
	gradient             []float64
	gradientNorm         float64
	direction            []float64
	rate                 float64
	elapsedSeconds       float64
}

// newHistory allocates history buffers for the reserved quantities only,
// pre-sized to hold capacity entries (maximum iterations + 1).
func newHistory(reserve Reserve, capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	h := &History{reserve: reserve}
	if reserve.Parameters {
		h.Parameters = make([][]float64, 0, capacity)
	}
	if reserve.ParametersNorm {
		h.ParametersNorm = make([]float64, 0, capacity)
	}
	if reserve.Performance {
		h.Performance = make([]float64, 0, capacity)
	}
	if reserve.SelectionPerformance {
		h.SelectionPerformance = make([]float64, 0, capacity)
	}
	if reserve.Gradient {
		h.Gradient = make([][]float64, 0, capacity)
	}
	if reserve.GradientNorm {
		h.GradientNorm = make([]float64, 0, capacity)
	}
	if reserve.Direction {
		h.Direction = make([][]float64, 0, capacity)
	}
	if reserve.Rate {
		h.Rate = make([]float64, 0, capacity)
	}
	if reserve.ElapsedTime {
		h.ElapsedTime = make([]float64, 0, capacity)
	}
	return h
}

// record appends the reserved quantities of one iteration.
func (h *History) record(s snapshot) {
	if h.reserve.Parameters {
		h.Parameters = append(h.Parameters, cloneVector(s.parameters))
	}
	if h.reserve.ParametersNorm {
		h.ParametersNorm = append(h.ParametersNorm, s.parametersNorm)
	}
	if h.reserve.Performance {
		h.Performance = append(h.Performance, s.performance)
	}
	if h.reserve.SelectionPerformance {
		h.SelectionPerformance = append(h.SelectionPerformance, s.selectionPerformance)
	}
	if h.reserve.Gradient {
		h.Gradient = append(h.Gradient, cloneVector(s.gradient))
	}
	if h.reserve.GradientNorm {
		h.GradientNorm = append(h.GradientNorm, s.gradientNorm)
	}
	if h.reserve.Direction {
		h.Direction = append(h.Direction, cloneVector(s.direction))
	}
	if h.reserve.Rate {
		h.Rate = append(h.Rate, s.rate)
	}
	if h.reserve.ElapsedTime {
		h.ElapsedTime = append(h.ElapsedTime, s.elapsedSeconds)
	}
}

// Entries returns the number of recorded iterations (the length of the
// longest reserved buffer; all reserved buffers grow in lockstep).
func (h *History) Entries() int {
	switch {
	case h.reserve.Parameters:
		return len(h.Parameters)
	case h.reserve.ParametersNorm:
		return len(h.ParametersNorm)
	case h.reserve.Performance:
		return len(h.Performance)
	case h.reserve.SelectionPerformance:
		return len(h.SelectionPerformance)
	case h.reserve.Gradient:
		return len(h.Gradient)
	case h.reserve.GradientNorm:
		return len(h.GradientNorm)
	case h.reserve.Direction:
		return len(h.Direction)
	case h.reserve.Rate:
		return len(h.Rate)
	case h.reserve.ElapsedTime:
		return len(h.ElapsedTime)
	}
	return 0
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
