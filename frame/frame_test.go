package frame_test

import (
	"testing"

	"github.com/lukosev/flipbook/frame"
)

func TestBarPlacement(t *testing.T) {
	const (
		width  = 1024
		height = 768
		count  = 10
	)

	store, err := frame.NewStore(width, height, count)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < count; i++ {
		img := store.Frame(i)

		bar := width * i / count
		barw := width / count

		for x := 0; x < width; x++ {
			r, g, b, a := img.At(x, 0).RGBA()
			inBar := x >= bar && x <= bar+barw
			if inBar && (r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff) {
				t.Fatalf("frame %d: column %d should be opaque white", i, x)
			}
			if !inBar && (r != 0 || g != 0 || b != 0 || a != 0) {
				t.Fatalf("frame %d: column %d should be transparent black", i, x)
			}
		}
	}
}

func TestFrameThreeBand(t *testing.T) {
	store, err := frame.NewStore(1024, 768, 10)
	if err != nil {
		t.Fatal(err)
	}

	img := store.Frame(3)

	// the band spans columns [307, 410): 1024*3/10 = 307 and the bar is
	// 1024/10 = 102 pixels wide with an inclusive right edge
	for x := 0; x < 1024; x++ {
		_, _, _, a := img.At(x, 0).RGBA()
		if x >= 307 && x < 410 {
			if a != 0xffff {
				t.Fatalf("column %d should be inside the band", x)
			}
		} else if a != 0 {
			t.Fatalf("column %d should be outside the band", x)
		}
	}
}

func TestRowsIdentical(t *testing.T) {
	store, err := frame.NewStore(1024, 768, 10)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < store.Count(); i++ {
		img := store.Frame(i)
		stride := img.Stride
		row0 := img.Pix[:stride]
		for y := 1; y < store.Height(); y++ {
			row := img.Pix[y*stride : (y+1)*stride]
			for x := range row {
				if row[x] != row0[x] {
					t.Fatalf("frame %d: row %d differs from row 0", i, y)
				}
			}
		}
	}
}

func TestCyclicSelection(t *testing.T) {
	store, err := frame.NewStore(64, 48, 10)
	if err != nil {
		t.Fatal(err)
	}

	if store.Frame(10) != store.Frame(0) {
		t.Error("tick 10 should select the same frame as tick 0")
	}
	if store.Frame(23) != store.Frame(3) {
		t.Error("tick 23 should select the same frame as tick 3")
	}
}

func TestFramesDoNotOverlap(t *testing.T) {
	store, err := frame.NewStore(32, 16, 4)
	if err != nil {
		t.Fatal(err)
	}

	// writing through one view must not show up in any other frame
	probe := store.Frame(1)
	probe.Pix[0] = 0xaa

	for i := 0; i < store.Count(); i++ {
		if i == 1 {
			continue
		}
		if store.Frame(i).Pix[0] == 0xaa {
			t.Fatalf("frame %d shares pixels with frame 1", i)
		}
	}
}

func TestRejectsBadDimensions(t *testing.T) {
	if _, err := frame.NewStore(0, 768, 10); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := frame.NewStore(1024, -1, 10); err == nil {
		t.Error("negative height should be rejected")
	}
	if _, err := frame.NewStore(1024, 768, 0); err == nil {
		t.Error("zero frame count should be rejected")
	}
}

func BenchmarkNewStore(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		if _, err := frame.NewStore(1024, 768, 10); err != nil {
			b.Fatal(err)
		}
	}
}
