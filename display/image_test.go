package display

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomvbussel/renoster/vecmath"
)

func TestImageWriteDataRejectsWrongBufferLength(t *testing.T) {
	d := NewImage(filepath.Join(t.TempDir(), "out.png"))
	if err := d.Open(vecmath.V2i(2, 2)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := d.WriteData(make([]float64, 3)); err == nil {
		t.Errorf("WriteData with a short buffer succeeded, want error")
	}
}

func TestImageWriteDataBeforeOpenErrors(t *testing.T) {
	d := NewImage(filepath.Join(t.TempDir(), "out.png"))
	if err := d.WriteData(make([]float64, 12)); err == nil {
		t.Errorf("WriteData before Open succeeded, want error")
	}
}

func TestImageOpenWriteCloseProducesAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	d := NewImage(path)

	if err := d.Open(vecmath.V2i(2, 2)); err != nil {
		t.Fatalf("Open: %v", err)
	}
	pixels := make([]float64, 2*2*3)
	for i := range pixels {
		pixels[i] = 0.5
	}
	if err := d.WriteData(pixels); err != nil {
		t.Fatalf("WriteData: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("output PNG is empty")
	}
}

func TestQuantizeClampsToByteRange(t *testing.T) {
	cases := map[float64]uint8{-1: 0, 0: 0, 0.5: 128, 1: 255, 2: 255}
	for in, want := range cases {
		if got := quantize(in); got != want {
			t.Errorf("quantize(%v) = %d, want %d", in, got, want)
		}
	}
}
