// Package rom holds the program ROM of the reverb engine.
//
// The ROM is 64 programs of 128 opcodes each, plus a parallel table of
// program names. The built-in image is assembled once from the program
// designs in this package and is read-only afterwards. Images can also be
// loaded from, and written to, a flat binary format:
//
//	8192 x uint16 little-endian opcode words
//	64 x NUL-terminated ASCII program names
package rom
