package xdlms

import (
	"bytes"
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

func codedlength(len uint) int {
	if len < 128 {
		return 1
	}
	if len < 256 {
		return 2
	}
	if len < 65536 {
		return 3
	}
	if len < 16777216 {
		return 4
	}
	return 5
}

func encodelength(dst *bytes.Buffer, len uint) {
	if len < 128 {
		dst.WriteByte(byte(len))
		return
	}
	if len < 256 {
		dst.WriteByte(0x81)
		dst.WriteByte(byte(len))
		return
	}
	if len < 65536 {
		dst.WriteByte(0x82)
		dst.WriteByte(byte(len >> 8))
		dst.WriteByte(byte(len))
		return
	}
	if len < 16777216 {
		dst.WriteByte(0x83)
		dst.WriteByte(byte(len >> 16))
		dst.WriteByte(byte(len >> 8))
		dst.WriteByte(byte(len))
		return
	}
	dst.WriteByte(0x84)
	dst.WriteByte(byte(len >> 24))
	dst.WriteByte(byte(len >> 16))
	dst.WriteByte(byte(len >> 8))
	dst.WriteByte(byte(len))
}

// decodelength reads an A-XDR encoded length from the front of src and
// returns the value together with the amount of consumed bytes.
func decodelength(src []byte) (uint, int, error) {
	if len(src) == 0 {
		return 0, 0, fmt.Errorf("no length byte: %w", base.ErrLengthMismatch)
	}
	b := src[0]
	if b < 128 {
		return uint(b), 1, nil
	}
	if b == 128 {
		return 0, 0, fmt.Errorf("unsupported infinite length: %w", base.ErrLengthMismatch)
	}
	c := int(b & 0x7f)
	if c > 4 {
		return 0, 0, fmt.Errorf("too much bytes for length: %w", base.ErrLengthMismatch)
	}
	if len(src) < c+1 {
		return 0, 0, fmt.Errorf("truncated length: %w", base.ErrLengthMismatch)
	}
	r := uint(0)
	for i := 1; i <= c; i++ {
		r = (r << 8) | uint(src[i])
	}
	return r, c + 1, nil
}
