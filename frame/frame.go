// Package frame holds the in-memory bank of pre-generated animation
// frames. The bank owns one contiguous pixel buffer; individual frames
// are fixed-size, non-overlapping views into it.
package frame

import (
	"errors"
	"fmt"
	"image"
)

const bytesPerPixel = 4

// Store is an ordered, fixed-length sequence of equally sized RGBA
// frames, generated once and indexed cyclically. Frames returned from
// the store are borrowed views and must not be written to.
type Store struct {
	width  int
	height int
	count  int

	pix    []uint8
	frames []*image.RGBA
}

// NewStore generates the traveling-bar animation: frame i draws an
// opaque white vertical bar of width/count pixels with its left edge at
// column width*i/count, on a fully transparent black background. Played
// in order the bar travels left to right.
func NewStore(width, height, count int) (*Store, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame.NewStore(): invalid dimensions %dx%d", width, height)
	}
	if count <= 0 {
		return nil, errors.New("frame.NewStore(): frame count must be positive")
	}

	s := &Store{
		width:  width,
		height: height,
		count:  count,
		pix:    make([]uint8, width*height*bytesPerPixel*count),
		frames: make([]*image.RGBA, count),
	}

	size := width * height * bytesPerPixel
	for i := 0; i < count; i++ {
		s.frames[i] = &image.RGBA{
			Pix:    s.pix[i*size : (i+1)*size : (i+1)*size],
			Stride: width * bytesPerPixel,
			Rect:   image.Rect(0, 0, width, height),
		}
		s.generate(i)
	}
	return s, nil
}

// generate fills frame i. Bar pixels span columns [bar, bar+barw]; the
// right edge is inclusive, matching the reference animation.
func (s *Store) generate(i int) {
	bar := s.width * i / s.count
	barw := s.width / s.count

	pix := s.frames[i].Pix
	p := 0
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			if x >= bar && x <= bar+barw {
				pix[p] = 0xff
				pix[p+1] = 0xff
				pix[p+2] = 0xff
				pix[p+3] = 0xff
			}
			p += bytesPerPixel
		}
	}
}

// Width returns the pixel width of every frame in the store.
func (s *Store) Width() int {
	return s.width
}

// Height returns the pixel height of every frame in the store.
func (s *Store) Height() int {
	return s.height
}

// Count returns the number of frames in the store.
func (s *Store) Count() int {
	return s.count
}

// Frame returns the frame for the given tick. Ticks wrap around the
// store, so tick count selects the same frame as tick zero.
func (s *Store) Frame(tick int) *image.RGBA {
	return s.frames[tick%s.count]
}
