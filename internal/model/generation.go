package model

// GenerationPhase identifies which generator phase produced a password.
type GenerationPhase int

const (
	// PhaseSeed means the constructive seed scored at the maximum.
	PhaseSeed GenerationPhase = iota

	// PhaseMutation means a mutation of the seed reached the maximum.
	PhaseMutation

	// PhaseFallback means a fresh random candidate reached the maximum.
	PhaseFallback

	// PhaseLastResort means no phase reached the maximum and the
	// original seed was returned as a best effort.
	PhaseLastResort
)

// String returns the phase name.
func (p GenerationPhase) String() string {
	switch p {
	case PhaseSeed:
		return "seed"
	case PhaseMutation:
		return "mutation"
	case PhaseFallback:
		return "fallback"
	case PhaseLastResort:
		return "last-resort"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p GenerationPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Generation describes one generated password and how it was found.
type Generation struct {
	// Password is the generated candidate.
	Password string `json:"password"`

	// Length is the requested length.
	Length int `json:"length"`

	// Phase is the phase that produced Password.
	Phase GenerationPhase `json:"phase"`

	// Attempts counts scoring evaluations spent, including the seed.
	Attempts int `json:"attempts"`

	// Result is the score of Password.
	Result ScoreResult `json:"result"`
}
