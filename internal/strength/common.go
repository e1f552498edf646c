package strength

import (
	"slices"
)

// commonPasswords is the static denylist of known-weak passwords.
// Entries are stored case-folded; the set is never modified after init.
var commonPasswords = func() map[string]struct{} {
	raw := []string{
		"password", "123456", "123456789", "qwerty", "abc123", "111111",
		"password1", "12345678", "iloveyou", "admin", "welcome", "letmein",
	}
	set := make(map[string]struct{}, len(raw))
	for _, pw := range raw {
		set[Fold(pw)] = struct{}{}
	}
	return set
}()

// IsCommon reports whether the case-folded candidate exactly matches an
// entry in the common-password set.
func IsCommon(candidate string) bool {
	_, ok := commonPasswords[Fold(candidate)]
	return ok
}

// CommonPasswords returns a sorted copy of the denylist.
func CommonPasswords() []string {
	out := make([]string, 0, len(commonPasswords))
	for pw := range commonPasswords {
		out = append(out, pw)
	}
	slices.Sort(out)
	return out
}
