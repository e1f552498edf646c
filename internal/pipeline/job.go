package pipeline

import "github.com/nao1215/pwstrength/internal/model"

// Job is the unit of work a Pipeline operates on. Steps read Length and
// fill in Generation.
type Job struct {
	// Index is the 0-based position of the job in its batch.
	Index int

	// Length is the requested password length.
	Length int

	// Generation is the result produced by the steps.
	Generation model.Generation

	// PerformedSteps lists the names of the steps that ran, in order.
	PerformedSteps []string

	// Err is the first step error, if any.
	Err error
}

// NewJob creates a Job for a password of the given length.
func NewJob(index, length int) *Job {
	return &Job{
		Index:  index,
		Length: length,
	}
}

// Failed reports whether a step recorded an error.
func (j *Job) Failed() bool {
	return j.Err != nil
}
