package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/photoprism/emojify/internal/face"
)

func TestClassify(t *testing.T) {
	t.Run("Examples", func(t *testing.T) {
		assert.Equal(t, Smile, Classify(0.2, 0.6, 0.6))
		assert.Equal(t, LeftWink, Classify(0.2, 0.4, 0.6))
		assert.Equal(t, RightWink, Classify(0.2, 0.6, 0.4))
		assert.Equal(t, ClosedFrown, Classify(0.1, 0.3, 0.3))
	})
	t.Run("DecisionTable", func(t *testing.T) {
		tests := []struct {
			smiling, right, left float32
			expected             Category
		}{
			{0.9, 0.9, 0.9, Smile},
			{0.9, 0.9, 0.1, LeftWink},
			{0.9, 0.1, 0.9, RightWink},
			{0.9, 0.1, 0.1, ClosedSmile},
			{0.1, 0.9, 0.9, Frown},
			{0.1, 0.9, 0.1, LeftWinkFrown},
			{0.1, 0.1, 0.9, RightWinkFrown},
			{0.1, 0.1, 0.1, ClosedFrown},
		}

		for _, tt := range tests {
			t.Run(tt.expected.String(), func(t *testing.T) {
				assert.Equal(t, tt.expected, Classify(tt.smiling, tt.left, tt.right))
			})
		}
	})
	t.Run("SmilingThreshold", func(t *testing.T) {
		assert.Equal(t, Frown, Classify(0.149, 0.9, 0.9))
		assert.Equal(t, Smile, Classify(0.15, 0.9, 0.9))
		assert.Equal(t, Smile, Classify(0.151, 0.9, 0.9))
	})
	t.Run("LeftEyeThreshold", func(t *testing.T) {
		assert.Equal(t, LeftWink, Classify(0.9, 0.499, 0.9))
		assert.Equal(t, Smile, Classify(0.9, 0.5, 0.9))
		assert.Equal(t, Smile, Classify(0.9, 0.501, 0.9))
	})
	t.Run("RightEyeThreshold", func(t *testing.T) {
		assert.Equal(t, RightWinkFrown, Classify(0.1, 0.9, 0.499))
		assert.Equal(t, Frown, Classify(0.1, 0.9, 0.5))
		assert.Equal(t, Frown, Classify(0.1, 0.9, 0.501))
	})
	t.Run("OutOfRange", func(t *testing.T) {
		assert.Equal(t, ClosedFrown, Classify(-1, -1, -1))
		assert.Equal(t, Smile, Classify(2, 2, 2))
	})
	t.Run("Total", func(t *testing.T) {
		for s := float32(0); s <= 1; s += 0.05 {
			for l := float32(0); l <= 1; l += 0.1 {
				for r := float32(0); r <= 1; r += 0.1 {
					assert.True(t, Classify(s, l, r).Valid())
				}
			}
		}
	})
}

func TestForFace(t *testing.T) {
	f := face.Face{Smiling: 0.2, LeftEyeOpen: 0.6, RightEyeOpen: 0.4}

	assert.Equal(t, RightWink, ForFace(f))
}

func TestCategory(t *testing.T) {
	t.Run("Names", func(t *testing.T) {
		assert.Len(t, Categories, 8)

		for _, c := range Categories {
			parsed, err := ParseCategory(c.Name())

			assert.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})
	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseCategory("grin")

		assert.Error(t, err)
		assert.False(t, Category(42).Valid())
		assert.Equal(t, "category(42)", Category(42).String())
	})
	t.Run("Features", func(t *testing.T) {
		for _, c := range Categories {
			assert.Equal(t, c, Classify(
				map[bool]float32{true: 1, false: 0}[c.Smiling()],
				map[bool]float32{true: 1, false: 0}[c.LeftEyeOpen()],
				map[bool]float32{true: 1, false: 0}[c.RightEyeOpen()],
			), c.String())
		}
	})
}
