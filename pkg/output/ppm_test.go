package output

import (
	"bufio"
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
)

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name    string
		sum     core.Vec3
		samples int
		r, g, b uint8
	}{
		{"white clamps to 255", core.NewVec3(1, 1, 1), 1, 255, 255, 255},
		{"overexposed clamps to 255", core.NewVec3(40, 40, 40), 4, 255, 255, 255},
		{"black", core.Vec3{}, 10, 0, 0, 0},
		{"gamma 2 over samples", core.NewVec3(1, 0.25, 0.0625), 4, 128, 64, 32},
		{"NaN is black", core.NewVec3(math.NaN(), 1, 1), 1, 0, 255, 255},
		{"negative is black", core.NewVec3(-1, 0, 0), 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := EncodeColor(tt.sum, tt.samples)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected %d %d %d, got %d %d %d", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	fb := renderer.NewFramebuffer(3, 2, 1)
	fb.Pixels[0] = core.NewVec3(1, 1, 1)   // top-left white
	fb.Pixels[5] = core.NewVec3(0, 0, 0.25) // bottom-right half blue

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if len(lines) != 3+6 {
		t.Fatalf("Expected 3 header lines and 6 pixels, got %d lines", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "3 2" || lines[2] != "255" {
		t.Errorf("Unexpected header %q", lines[:3])
	}
	if lines[3] != "255 255 255" {
		t.Errorf("Expected first pixel white, got %q", lines[3])
	}
	if lines[8] != "0 0 128" {
		t.Errorf("Expected last pixel 0 0 128, got %q", lines[8])
	}

	for _, line := range lines[3:] {
		fields := strings.Fields(line)
		if len(fields) != 3 {
			t.Fatalf("Expected R G B triple, got %q", line)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 255 {
				t.Errorf("Channel out of range: %q", f)
			}
		}
	}
}
