package colorspace

import (
	"errors"
	"fmt"
)

// ErrDecode reports malformed packed color data or an unsupported encoding.
// Wrapped errors can be tested with errors.Is.
var ErrDecode = errors.New("color decode error")

// Encoding names a packed color layout used inside the binary image.
type Encoding string

const (
	// EncodingRGB555 is the 2-byte little-endian 5-5-5 RGB layout used by
	// raw palette entries: bits 0-4 red, 5-9 green, 10-14 blue.
	EncodingRGB555 Encoding = "rgb555"

	// EncodingOAM16 is the 5-byte sprite attribute entry: red at byte 0,
	// green duplicated at bytes 1 and 3, blue at byte 4. Each channel sits
	// in the low 5 bits; the high bits carry hardware flags that must be
	// reasserted on write (0x20, 0x40, 0x40, 0x80 respectively). Byte 2 is
	// unrelated sprite data and is never touched.
	EncodingOAM16 Encoding = "oam16"
)

// ByteWidth returns the number of bytes one packed entry occupies.
func (e Encoding) ByteWidth() (int, error) {
	switch e {
	case EncodingRGB555:
		return 2, nil
	case EncodingOAM16:
		return 5, nil
	default:
		return 0, fmt.Errorf("unsupported encoding %q: %w", string(e), ErrDecode)
	}
}

// Decode reads one packed color from the start of buf.
//
// Five-bit channels are expanded to 8 bits with c<<3 | c>>2, which maps 0 to
// 0 and 31 to 255 and is exactly inverted by Encode's truncation.
func Decode(buf []byte, e Encoding) (ColorValue, error) {
	width, err := e.ByteWidth()
	if err != nil {
		return ColorValue{}, err
	}
	if len(buf) < width {
		return ColorValue{}, fmt.Errorf("short buffer for %q: have %d bytes, need %d: %w",
			string(e), len(buf), width, ErrDecode)
	}

	switch e {
	case EncodingRGB555:
		v := uint16(buf[0]) | uint16(buf[1])<<8
		return ColorValue{
			R: expand5(uint8(v & 0x1F)),
			G: expand5(uint8(v >> 5 & 0x1F)),
			B: expand5(uint8(v >> 10 & 0x1F)),
		}, nil
	default: // EncodingOAM16
		return ColorValue{
			R: expand5(buf[0] & 0x1F),
			G: expand5(buf[1] & 0x1F),
			B: expand5(buf[4] & 0x1F),
		}, nil
	}
}

// Encode writes c into the start of dst in the packed layout. It is the
// lossy inverse of Decode: 8-bit channels truncate to 5 bits.
//
// For EncodingOAM16 the hardware flag bits are OR'd back in and byte 2 is
// left as-is.
func Encode(c ColorValue, e Encoding, dst []byte) error {
	width, err := e.ByteWidth()
	if err != nil {
		return err
	}
	if len(dst) < width {
		return fmt.Errorf("short buffer for %q: have %d bytes, need %d: %w",
			string(e), len(dst), width, ErrDecode)
	}

	r, g, b := c.R>>3, c.G>>3, c.B>>3
	switch e {
	case EncodingRGB555:
		v := uint16(r) | uint16(g)<<5 | uint16(b)<<10
		dst[0] = uint8(v)
		dst[1] = uint8(v >> 8)
	default: // EncodingOAM16
		dst[0] = r | 0x20
		dst[1] = g | 0x40
		dst[3] = g | 0x40
		dst[4] = b | 0x80
	}
	return nil
}

// expand5 widens a 5-bit channel to 8 bits.
func expand5(c uint8) uint8 {
	return c<<3 | c>>2
}
