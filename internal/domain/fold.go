package domain

import "golang.org/x/text/cases"

// Fold returns the case-folded form of s used for case-insensitive comparison.
// A Caser keeps state, so a fresh one is used per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}
