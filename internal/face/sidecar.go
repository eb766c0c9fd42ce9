package face

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/photoprism/emojify/pkg/fs"
	"github.com/photoprism/emojify/pkg/sanitize"
)

// SidecarFace represents a face in a YAML or JSON sidecar file.
type SidecarFace struct {
	Box          []float64 `yaml:"bbox"`
	Score        *float64  `yaml:"det_score,omitempty"`
	Smiling      float64   `yaml:"smiling"`
	LeftEyeOpen  float64   `yaml:"left_eye_open"`
	RightEyeOpen float64   `yaml:"right_eye_open"`
}

// Sidecar reads pre-computed faces from a sidecar file instead of running a detector.
type Sidecar struct {
	fileName string
	opt      Options
}

// NewSidecar returns a detector that reads faces from fileName.
func NewSidecar(fileName string, opt Options) (*Sidecar, error) {
	if !fs.FileExists(fileName) {
		return nil, fmt.Errorf("faces: sidecar %s not found (%w)", sanitize.Log(filepath.Base(fileName)), ErrDetectorUnavailable)
	}

	return &Sidecar{fileName: fileName, opt: opt}, nil
}

// SidecarFactory returns a factory for sidecar detectors.
func SidecarFactory(fileName string) Factory {
	return func(opt Options) (Detector, error) {
		return NewSidecar(fileName, opt)
	}
}

// Detect returns the faces listed in the sidecar file that lie within the image bounds.
func (s *Sidecar) Detect(ctx context.Context, img image.Image) (faces Faces, err error) {
	data, err := os.ReadFile(s.fileName)

	if err != nil {
		return faces, fmt.Errorf("faces: %s (%w)", err, ErrDetectorUnavailable)
	}

	return ParseSidecar(data, img.Bounds(), s.opt.MinScore)
}

// Release implements Detector.
func (s *Sidecar) Release() error {
	return nil
}

// ParseSidecar parses sidecar data. JSON is accepted as it is a subset of YAML.
func ParseSidecar(data []byte, bounds image.Rectangle, minScore float64) (faces Faces, err error) {
	var list []SidecarFace

	if err = yaml.Unmarshal(data, &list); err != nil {
		return faces, fmt.Errorf("faces: %s (parse sidecar)", err)
	}

	for i, sf := range list {
		if len(sf.Box) < 4 {
			log.Debugf("faces: skipped sidecar entry %d without bounding box", i)
			continue
		}

		score := 1.0

		if sf.Score != nil {
			score = *sf.Score
		}

		if score < minScore {
			continue
		}

		f := NewFace(sf.Box[0], sf.Box[1], sf.Box[2], sf.Box[3], score, sf.Smiling, sf.LeftEyeOpen, sf.RightEyeOpen)

		if !f.InBounds(bounds) {
			log.Debugf("faces: skipped sidecar entry %d outside image bounds", i)
			continue
		}

		faces.Append(f)
	}

	return faces, nil
}
