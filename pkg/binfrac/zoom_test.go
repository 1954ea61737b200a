package binfrac

import (
	"strings"
	"testing"
)

func TestZoomDepth(t *testing.T) {
	tests := []struct {
		name    string
		binary  string
		wantDec int
		wantBin int
		wantOK  bool
	}{
		{"no binary point", "101", 0, 0, false},
		{"empty string", "", 0, 0, false},
		{"no leading zeros", "0.1", 0, 0, true},
		{"three leading zeros", "0.0001", 0, 3, true},
		{"ten leading zeros", "0.00000000001", 3, 10, true},
		{"hundred leading zeros", "0." + strings.Repeat("0", 100) + "1", 30, 100, true},
		{"all zeros after point", "0.0000", 1, 4, true},
		{"integer part ignored", "-110.001", 0, 2, true},
		{"deep zoom", "0." + strings.Repeat("0", 999) + "1", 300, 999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, bin, ok := ZoomDepth(tt.binary)
			if ok != tt.wantOK {
				t.Fatalf("ZoomDepth(%q) ok = %v, want %v", tt.binary, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if dec != tt.wantDec || bin != tt.wantBin {
				t.Errorf("ZoomDepth(%q) = (%d, %d), want (%d, %d)", tt.binary, dec, bin, tt.wantDec, tt.wantBin)
			}
		})
	}
}
