/*
Package emoji classifies facial expressions and provides the matching emoji images.

Each detected face is mapped to one of eight categories based on fixed smiling
and eye-open probability thresholds, see Classify.
*/
package emoji

import (
	"fmt"
	"strings"

	"github.com/photoprism/emojify/internal/event"
)

var log = event.Log

// Category represents an emoji for a facial expression.
type Category int

const (
	Smile Category = iota
	LeftWink
	RightWink
	ClosedSmile
	Frown
	LeftWinkFrown
	RightWinkFrown
	ClosedFrown
)

// Categories lists all emoji categories.
var Categories = []Category{
	Smile,
	LeftWink,
	RightWink,
	ClosedSmile,
	Frown,
	LeftWinkFrown,
	RightWinkFrown,
	ClosedFrown,
}

var categoryNames = map[Category]string{
	Smile:          "smile",
	LeftWink:       "leftwink",
	RightWink:      "rightwink",
	ClosedSmile:    "closed_smile",
	Frown:          "frown",
	LeftWinkFrown:  "leftwinkfrown",
	RightWinkFrown: "rightwinkfrown",
	ClosedFrown:    "closed_frown",
}

// Name returns the asset name of the category.
func (c Category) Name() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}

	return ""
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if n := c.Name(); n != "" {
		return n
	}

	return fmt.Sprintf("category(%d)", int(c))
}

// Valid tests if the category is known.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Smiling tests if the category shows a smile.
func (c Category) Smiling() bool {
	switch c {
	case Smile, LeftWink, RightWink, ClosedSmile:
		return true
	default:
		return false
	}
}

// LeftEyeOpen tests if the left eye is open.
func (c Category) LeftEyeOpen() bool {
	switch c {
	case Smile, RightWink, Frown, RightWinkFrown:
		return true
	default:
		return false
	}
}

// RightEyeOpen tests if the right eye is open.
func (c Category) RightEyeOpen() bool {
	switch c {
	case Smile, LeftWink, Frown, LeftWinkFrown:
		return true
	default:
		return false
	}
}

// ParseCategory returns the category for an asset name.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for c, n := range categoryNames {
		if n == s {
			return c, nil
		}
	}

	return Smile, fmt.Errorf("emoji: unknown category %q", s)
}
