package colorspace

import (
	"bytes"
	"errors"
	"testing"
)

// TestRGB555_RoundTrip decodes and re-encodes every 15-bit color word and
// expects the original bytes back.
func TestRGB555_RoundTrip(t *testing.T) {
	for v := 0; v < 0x8000; v++ {
		buf := []byte{byte(v), byte(v >> 8)}
		c, err := Decode(buf, EncodingRGB555)
		if err != nil {
			t.Fatalf("Decode(%#04x) failed: %v", v, err)
		}

		out := make([]byte, 2)
		if err := Encode(c, EncodingRGB555, out); err != nil {
			t.Fatalf("Encode(%#04x) failed: %v", v, err)
		}
		if !bytes.Equal(buf, out) {
			t.Fatalf("round trip of %#04x produced % x, want % x", v, out, buf)
		}
	}
}

func TestRGB555_ChannelExpansion(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want ColorValue
	}{
		{"black", []byte{0x00, 0x00}, ColorValue{0, 0, 0}},
		{"white", []byte{0xFF, 0x7F}, ColorValue{255, 255, 255}},
		{"max red", []byte{0x1F, 0x00}, ColorValue{255, 0, 0}},
		{"max green", []byte{0xE0, 0x03}, ColorValue{0, 255, 0}},
		{"max blue", []byte{0x00, 0x7C}, ColorValue{0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.buf, EncodingRGB555)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode(% x) = %v, want %v", tt.buf, got, tt.want)
			}
		})
	}
}

func TestOAM16_Decode(t *testing.T) {
	// High bits are hardware flags and must be masked off on read.
	buf := []byte{0x3F, 0x55, 0xAA, 0x55, 0x9F}
	got, err := Decode(buf, EncodingOAM16)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := ColorValue{R: expand5(0x1F), G: expand5(0x15), B: expand5(0x1F)}
	if got != want {
		t.Errorf("Decode(% x) = %v, want %v", buf, got, want)
	}
}

func TestOAM16_Encode(t *testing.T) {
	dst := []byte{0x00, 0x00, 0xAA, 0x00, 0x00}
	if err := Encode(ColorValue{255, 0, 0}, EncodingOAM16, dst); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if dst[0] != 0x1F|0x20 {
		t.Errorf("red byte = %#02x, want %#02x", dst[0], 0x1F|0x20)
	}
	if dst[1] != 0x40 || dst[3] != 0x40 {
		t.Errorf("green bytes = %#02x,%#02x, want 0x40,0x40", dst[1], dst[3])
	}
	if dst[4] != 0x80 {
		t.Errorf("blue byte = %#02x, want 0x80", dst[4])
	}
	if dst[2] != 0xAA {
		t.Errorf("byte 2 was touched: %#02x, want 0xAA", dst[2])
	}
}

func TestEncode_TruncatesLowBits(t *testing.T) {
	// 8-bit values below 8 collapse to channel 0; no dithering.
	dst := make([]byte, 2)
	if err := Encode(ColorValue{7, 7, 7}, EncodingRGB555, dst); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if dst[0] != 0 || dst[1] != 0 {
		t.Errorf("Encode(7,7,7) = % x, want 00 00", dst)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		enc  Encoding
	}{
		{"short rgb555 buffer", []byte{0x12}, EncodingRGB555},
		{"short oam16 buffer", []byte{1, 2, 3, 4}, EncodingOAM16},
		{"unsupported encoding", []byte{0, 0, 0, 0}, Encoding("rgb888")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.buf, tt.enc); !errors.Is(err, ErrDecode) {
				t.Errorf("Decode error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	if err := Encode(ColorValue{}, EncodingOAM16, make([]byte, 3)); !errors.Is(err, ErrDecode) {
		t.Errorf("short buffer error = %v, want ErrDecode", err)
	}
	if err := Encode(ColorValue{}, Encoding("bgr565"), make([]byte, 8)); !errors.Is(err, ErrDecode) {
		t.Errorf("unsupported encoding error = %v, want ErrDecode", err)
	}
}

func TestEncodingByteWidth(t *testing.T) {
	if w, err := EncodingRGB555.ByteWidth(); err != nil || w != 2 {
		t.Errorf("rgb555 width = %d, %v; want 2, nil", w, err)
	}
	if w, err := EncodingOAM16.ByteWidth(); err != nil || w != 5 {
		t.Errorf("oam16 width = %d, %v; want 5, nil", w, err)
	}
}
