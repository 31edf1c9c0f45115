package main

import (
	"slices"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []uint16
		wantErr bool
	}{
		{
			name: "space separated",
			in:   "D834 DD1E 0000",
			want: []uint16{0xD834, 0xDD1E, 0},
		},
		{
			name: "commas and prefixes",
			in:   "0x41,0x42",
			want: []uint16{0x41, 0x42},
		},
		{
			name:    "not hex",
			in:      "xyz",
			wantErr: true,
		},
		{
			name:    "unit too wide",
			in:      "1FFFF",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHex[uint16](tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseHex: expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHex: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseHex: got %04X, want %04X", got, tt.want)
			}
		})
	}
}

func TestReportDecodeError(t *testing.T) {
	var b strings.Builder
	report(&b, newStyles(false), []uint16{'a', 0xDC00, 'b', 0})
	out := b.String()

	for _, want := range []string{"[decode]", "invalid_unit", "0xdc00", "Length: 3 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestReportInteriorNul(t *testing.T) {
	var b strings.Builder
	report(&b, newStyles(false), []uint16{'a', 0, 'b', 0})
	out := b.String()

	for _, want := range []string{"[construct]", "interior_nul", "index 1", "Length: 1 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}
}

func TestReportAppendsTerminator(t *testing.T) {
	var b strings.Builder
	report(&b, newStyles(false), []uint16{'h', 'i'})
	out := b.String()

	if !strings.Contains(out, "appending U+0000") {
		t.Errorf("report output missing terminator note:\n%s", out)
	}
	if !strings.Contains(out, "Length: 2 units") {
		t.Errorf("report output missing length:\n%s", out)
	}
	if !strings.Contains(out, "Lossy:  hi") {
		t.Errorf("report output missing lossy string:\n%s", out)
	}
}
