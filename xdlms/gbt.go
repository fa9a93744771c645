package xdlms

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

const (
	gbtLastBlockBit = 0x80
	gbtStreamingBit = 0x40
	gbtWindowMask   = 0x3f

	gbtMaxBlockData = 255 // single length byte on the wire
	gbtHeaderSize   = 7   // tag, control, block number, block ack, length
)

// ControlOctet carries the block transfer flags. Window is the amount of
// blocks allowed in flight before an acknowledgement, 6 bits on the wire.
type ControlOctet struct {
	LastBlock bool
	Streaming bool
	Window    byte
}

func NewControlOctet(lastblock bool, streaming bool, window byte) (ControlOctet, error) {
	if window > gbtWindowMask {
		return ControlOctet{}, fmt.Errorf("window %d out of range [0,63]: %w", window, base.ErrFieldInvariant)
	}
	return ControlOctet{LastBlock: lastblock, Streaming: streaming, Window: window}, nil
}

func newControlOctetFromByte(src byte) ControlOctet {
	return ControlOctet{
		LastBlock: src&gbtLastBlockBit != 0,
		Streaming: src&gbtStreamingBit != 0,
		Window:    src & gbtWindowMask,
	}
}

func (c ControlOctet) ToByte() byte {
	b := c.Window & gbtWindowMask
	if c.LastBlock {
		b |= gbtLastBlockBit
	}
	if c.Streaming {
		b |= gbtStreamingBit
	}
	return b
}

// GeneralBlockTransfer is the generic fragmentation envelope, tag 0xE0.
// Wire layout: tag, control octet, block number (2), block ack (2),
// length (1), block data.
type GeneralBlockTransfer struct {
	Control     ControlOctet
	BlockNumber uint16
	BlockAck    uint16
	BlockData   []byte
}

func NewGeneralBlockTransfer(control ControlOctet, blocknumber uint16, blockack uint16, blockdata []byte) (GeneralBlockTransfer, error) {
	if control.Window > gbtWindowMask {
		return GeneralBlockTransfer{}, fmt.Errorf("window %d out of range [0,63]: %w", control.Window, base.ErrFieldInvariant)
	}
	if len(blockdata) > gbtMaxBlockData {
		return GeneralBlockTransfer{}, fmt.Errorf("block data %d bytes exceeds %d: %w", len(blockdata), gbtMaxBlockData, base.ErrFieldInvariant)
	}
	return GeneralBlockTransfer{Control: control, BlockNumber: blocknumber, BlockAck: blockack, BlockData: newcopy(blockdata)}, nil
}

func NewGeneralBlockTransferFromSlice(src []byte) (g GeneralBlockTransfer, err error) {
	if len(src) < gbtHeaderSize {
		err = fmt.Errorf("general-block-transfer needs at least %d bytes, got %d: %w", gbtHeaderSize, len(src), base.ErrLengthMismatch)
		return
	}
	if src[0] != byte(base.TagGeneralBlockTransfer) {
		err = fmt.Errorf("got tag %02x, want %02x: %w", src[0], byte(base.TagGeneralBlockTransfer), base.ErrTagMismatch)
		return
	}
	g.Control = newControlOctetFromByte(src[1])
	g.BlockNumber = binary.BigEndian.Uint16(src[2:])
	g.BlockAck = binary.BigEndian.Uint16(src[4:])
	dlen := int(src[6])
	rest := src[gbtHeaderSize:]
	if len(rest) < dlen {
		err = fmt.Errorf("block data declares %d bytes, %d available: %w", dlen, len(rest), base.ErrLengthMismatch)
		return
	}
	if len(rest) > dlen {
		err = fmt.Errorf("%d bytes after block data: %w", len(rest)-dlen, base.ErrTrailingData)
		return
	}
	g.BlockData = newcopy(rest)
	return
}

func (g GeneralBlockTransfer) Tag() base.CosemTag {
	return base.TagGeneralBlockTransfer
}

func (g GeneralBlockTransfer) Bytes() ([]byte, error) {
	if g.Control.Window > gbtWindowMask {
		return nil, fmt.Errorf("window %d out of range [0,63]: %w", g.Control.Window, base.ErrFieldInvariant)
	}
	if len(g.BlockData) > gbtMaxBlockData {
		return nil, fmt.Errorf("block data %d bytes exceeds %d: %w", len(g.BlockData), gbtMaxBlockData, base.ErrFieldInvariant)
	}
	var local bytes.Buffer
	local.Grow(gbtHeaderSize + len(g.BlockData))
	local.WriteByte(byte(base.TagGeneralBlockTransfer))
	local.WriteByte(g.Control.ToByte())
	local.WriteByte(byte(g.BlockNumber >> 8))
	local.WriteByte(byte(g.BlockNumber))
	local.WriteByte(byte(g.BlockAck >> 8))
	local.WriteByte(byte(g.BlockAck))
	local.WriteByte(byte(len(g.BlockData)))
	local.Write(g.BlockData)
	return local.Bytes(), nil
}

func (g GeneralBlockTransfer) String() string {
	return fmt.Sprintf("general-block-transfer block %d ack %d window %d last %t streaming %t data %d bytes",
		g.BlockNumber, g.BlockAck, g.Control.Window, g.Control.LastBlock, g.Control.Streaming, len(g.BlockData))
}

func newcopy(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
