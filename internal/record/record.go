// Package record writes field frames to an MJPEG AVI file.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// ErrClosed is returned when frames are added after Close.
var ErrClosed = errors.New("record: recorder closed")

// Recorder appends JPEG-encoded frames to an AVI container.
type Recorder struct {
	w       mjpeg.AviWriter
	width   int
	height  int
	quality int
	buf     bytes.Buffer
	frames  int
	closed  bool
}

// New creates the AVI file at path. Every frame must be width×height.
func New(path string, width, height, fps, quality int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("record: invalid frame size %dx%d", width, height)
	}
	if fps <= 0 {
		fps = 30
	}
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	w, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &Recorder{w: w, width: width, height: height, quality: quality}, nil
}

// AddFrame encodes img as JPEG and appends it.
func (r *Recorder) AddFrame(img image.Image) error {
	if r.closed {
		return ErrClosed
	}
	b := img.Bounds()
	if b.Dx() != r.width || b.Dy() != r.height {
		return fmt.Errorf("record: frame is %dx%d, want %dx%d", b.Dx(), b.Dy(), r.width, r.height)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.quality}); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.w.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index. It is safe to call more than once.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.w.Close(); err != nil {
		return fmt.Errorf("record: close: %w", err)
	}
	return nil
}
