// Package colorspace implements the color model and blend engine used by the
// palette patcher.
//
// Colors are represented by ColorValue, an immutable triple of 8-bit RGB
// channels. A second, perceptual view of the same color — hue, chroma, and
// luma (HCY) — is always derived from the RGB channels on demand and never
// stored, so two ColorValues with the same channels are interchangeable
// everywhere, including as map keys.
//
// # HCY Representation
//
// The derived axes are:
//   - Hue: 0-360 degrees on the color wheel (0 = red, 120 = green, 240 = blue).
//     Out-of-range inputs wrap.
//   - Chroma: 0-1, the normalized spread between the strongest and weakest
//     channel (0 = grayscale).
//   - Luma: 0-1, the perceptually weighted brightness using the standard
//     0.299/0.587/0.114 channel weights.
//
// Converting RGB to HCY and back reproduces the original channels within ±1,
// the quantization error of rounding the reconstructed floating-point
// channels to 8 bits.
//
// # Clamping
//
// Replacing one HCY axis can push a reconstructed channel outside [0,1].
// The policy is: clamp each channel independently to [0,1], then round half
// away from zero to 8 bits. Packing 8-bit channels into a narrower format
// truncates the low-order bits; no dithering is applied.
//
// # Packed Formats
//
// Decode and Encode translate between ColorValue and the fixed-width packed
// layouts found in the target image: 2-byte little-endian 5-5-5 RGB, and the
// 5-byte sprite attribute entry whose channels carry hardware flag bits.
//
// # Blends
//
// The blend functions are stateless. Single-axis blends (HueBlend,
// ChromaBlend, LumaBlend) replace one axis of the first color with that axis
// from the second. AcidBlend and MaseyaBlend consume values from a caller
// supplied RandomSource; given the same source sequence they are fully
// deterministic.
package colorspace
