/*
Package colors converts images between color spaces.
*/
package colors

import "strings"

// Profile represents an ICC color profile description.
type Profile string

const (
	ProfileDisplayP3 Profile = "Display P3"
)

// Equal compares the profile with an ICC profile description, ignoring case and surrounding whitespace.
func (p Profile) Equal(s string) bool {
	return strings.EqualFold(string(p), strings.TrimSpace(s))
}
