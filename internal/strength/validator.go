package strength

import (
	passwordvalidator "github.com/wagslane/go-password-validator"
)

// ValidatorEntropy returns the entropy estimate of go-password-validator,
// which also accounts for repeated and sequential characters. It is shown
// next to the heuristic score and never feeds into it.
func ValidatorEntropy(candidate string) float64 {
	return passwordvalidator.GetEntropy(candidate)
}

// CheckMinEntropy returns an error describing how to improve candidate if
// its validator entropy is below minBits. A non-positive minBits disables
// the check.
func CheckMinEntropy(candidate string, minBits float64) error {
	if minBits <= 0 {
		return nil
	}
	return passwordvalidator.Validate(candidate, minBits)
}
