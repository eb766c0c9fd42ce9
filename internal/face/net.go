package face

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/tidwall/gjson"

	"github.com/photoprism/emojify/pkg/sanitize"
)

// NetJpegQuality is the quality used for images sent to the detection service.
const NetJpegQuality = 90

// Net is a client for a face detection service reachable over HTTP.
//
// The service receives the JPEG encoded image and responds with a JSON array:
//
//	[{"bbox":[x1,y1,x2,y2],"det_score":0.98,"smiling":0.7,"left_eye_open":0.9,"right_eye_open":0.8}]
type Net struct {
	mu       sync.Mutex
	endpoint string
	opt      Options
	client   *http.Client
	released bool
}

// NewNet returns a new detection service client.
func NewNet(endpoint string, timeout time.Duration, opt Options) (*Net, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("faces: detector url missing (%w)", ErrDetectorUnavailable)
	}

	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("faces: invalid detector url %s (%w)", sanitize.Log(endpoint), ErrDetectorUnavailable)
	}

	return &Net{
		endpoint: endpoint,
		opt:      opt,
		client:   &http.Client{Timeout: timeout, Transport: &http.Transport{}},
	}, nil
}

// NetFactory returns a factory for detection service clients.
func NetFactory(endpoint string, timeout time.Duration) Factory {
	return func(opt Options) (Detector, error) {
		return NewNet(endpoint, timeout, opt)
	}
}

// Detect sends the image to the detection service and returns the faces found.
func (t *Net) Detect(ctx context.Context, img image.Image) (faces Faces, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released {
		return faces, fmt.Errorf("faces: detector already released (%w)", ErrDetectorUnavailable)
	}

	var buf bytes.Buffer

	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(NetJpegQuality)); err != nil {
		return faces, fmt.Errorf("faces: %s (encode)", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.requestUrl(img.Bounds()), &buf)

	if err != nil {
		return faces, fmt.Errorf("faces: %s (%w)", err, ErrDetectorUnavailable)
	}

	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := t.client.Do(req)

	if err != nil {
		return faces, fmt.Errorf("faces: %s (%w)", err, ErrDetectorUnavailable)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return faces, fmt.Errorf("faces: detector returned %s (%w)", resp.Status, ErrDetectorUnavailable)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return faces, fmt.Errorf("faces: %s (%w)", err, ErrDetectorUnavailable)
	}

	return ParseResponse(body, t.opt.MinScore)
}

// Release closes idle connections. It is safe to call Release more than once.
func (t *Net) Release() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.released {
		return nil
	}

	t.released = true
	t.client.CloseIdleConnections()

	return nil
}

func (t *Net) requestUrl(b image.Rectangle) string {
	q := url.Values{}
	q.Set("tracking", strconv.FormatBool(t.opt.Tracking))

	if t.opt.Classify {
		q.Set("classify", "all")
	} else {
		q.Set("classify", "none")
	}

	q.Set("width", strconv.Itoa(b.Dx()))
	q.Set("height", strconv.Itoa(b.Dy()))

	return t.endpoint + "?" + q.Encode()
}

// ParseResponse parses a detection service response and drops faces below minScore.
func ParseResponse(body []byte, minScore float64) (faces Faces, err error) {
	if !gjson.ValidBytes(body) {
		return faces, fmt.Errorf("faces: invalid detector response (%w)", ErrDetectorUnavailable)
	}

	result := gjson.ParseBytes(body)

	if !result.IsArray() {
		return faces, fmt.Errorf("faces: detector response is not a list (%w)", ErrDetectorUnavailable)
	}

	for i, r := range result.Array() {
		box := r.Get("bbox").Array()

		if len(box) < 4 {
			log.Debugf("faces: skipped result %d without bounding box", i)
			continue
		}

		score := 1.0

		if s := r.Get("det_score"); s.Exists() {
			score = s.Float()
		}

		if score < minScore {
			log.Tracef("faces: skipped result %d with score %.2f", i, score)
			continue
		}

		faces.Append(NewFace(
			box[0].Float(), box[1].Float(), box[2].Float(), box[3].Float(),
			score,
			r.Get("smiling").Float(),
			r.Get("left_eye_open").Float(),
			r.Get("right_eye_open").Float(),
		))
	}

	return faces, nil
}
