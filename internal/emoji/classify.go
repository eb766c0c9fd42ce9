package emoji

import (
	"github.com/photoprism/emojify/internal/face"
)

const (
	// SmilingThreshold is the minimum smiling probability for a face to count as smiling.
	SmilingThreshold = 0.15
	// EyeOpenThreshold is the minimum eye-open probability for an eye to count as open.
	EyeOpenThreshold = 0.5
)

// Classify returns the emoji category for the expression probabilities of a face.
func Classify(smiling, leftEyeOpen, rightEyeOpen float32) Category {
	isSmiling := smiling >= SmilingThreshold
	isRightEyeOpen := rightEyeOpen >= EyeOpenThreshold
	isLeftEyeOpen := leftEyeOpen >= EyeOpenThreshold

	switch {
	case isSmiling && isRightEyeOpen && isLeftEyeOpen:
		return Smile
	case isSmiling && isRightEyeOpen:
		return LeftWink
	case isSmiling && isLeftEyeOpen:
		return RightWink
	case isSmiling:
		return ClosedSmile
	case isRightEyeOpen && isLeftEyeOpen:
		return Frown
	case isRightEyeOpen:
		return LeftWinkFrown
	case isLeftEyeOpen:
		return RightWinkFrown
	default:
		return ClosedFrown
	}
}

// ForFace returns the emoji category for a detected face.
func ForFace(f face.Face) Category {
	log.Debugf("emoji: smiling probability %.3f", f.Smiling)
	log.Debugf("emoji: left eye open probability %.3f", f.LeftEyeOpen)
	log.Debugf("emoji: right eye open probability %.3f", f.RightEyeOpen)

	return Classify(f.Smiling, f.LeftEyeOpen, f.RightEyeOpen)
}
