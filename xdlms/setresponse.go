package xdlms

import (
	"encoding/binary"
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

// SetResponse is the closed five way CHOICE carried under tag 0xC5.
type SetResponse interface {
	Apdu
	setResponseTag() base.SetResponseTag
}

const (
	setResponseNormalSize        = 4 // tag, choice, invoke, result
	setResponseDataBlockSize     = 7 // tag, choice, invoke, block number (4)
	setResponseLastDataBlockSize = 8 // tag, choice, invoke, result, block number (4)
)

func decodesetresponseprefix(src []byte, want base.SetResponseTag, size int) (invoke InvokeIdAndPriority, err error) {
	if len(src) < size {
		err = fmt.Errorf("set-response needs %d bytes, got %d: %w", size, len(src), base.ErrLengthMismatch)
		return
	}
	if src[0] != byte(base.TagSetResponse) {
		err = fmt.Errorf("got tag %02x, want %02x: %w", src[0], byte(base.TagSetResponse), base.ErrTagMismatch)
		return
	}
	if base.SetResponseTag(src[1]) != want {
		err = fmt.Errorf("got set-response choice %d, want %d: %w", src[1], want, base.ErrTagMismatch)
		return
	}
	if len(src) > size {
		err = fmt.Errorf("%d bytes after set-response body: %w", len(src)-size, base.ErrTrailingData)
		return
	}
	invoke = NewInvokeIdAndPriorityFromByte(src[2])
	return
}

// SetResponseNormal reports the outcome of a single PDU write.
type SetResponseNormal struct {
	Invoke InvokeIdAndPriority
	Result base.DlmsResultTag
}

func NewSetResponseNormalFromSlice(src []byte) (r SetResponseNormal, err error) {
	invoke, err := decodesetresponseprefix(src, base.TagSetResponseNormal, setResponseNormalSize)
	if err != nil {
		return
	}
	r = SetResponseNormal{Invoke: invoke, Result: base.DlmsResultTag(src[3])}
	return
}

func (r SetResponseNormal) Tag() base.CosemTag {
	return base.TagSetResponse
}

func (r SetResponseNormal) setResponseTag() base.SetResponseTag {
	return base.TagSetResponseNormal
}

func (r SetResponseNormal) Bytes() ([]byte, error) {
	return []byte{byte(base.TagSetResponse), byte(base.TagSetResponseNormal), r.Invoke.ToByte(), byte(r.Result)}, nil
}

func (r SetResponseNormal) String() string {
	return fmt.Sprintf("set-response-normal result %s", r.Result)
}

// SetResponseDataBlock acknowledges a non final block, it carries no result.
type SetResponseDataBlock struct {
	Invoke      InvokeIdAndPriority
	BlockNumber uint32
}

func NewSetResponseDataBlockFromSlice(src []byte) (r SetResponseDataBlock, err error) {
	invoke, err := decodesetresponseprefix(src, base.TagSetResponseDataBlock, setResponseDataBlockSize)
	if err != nil {
		return
	}
	r = SetResponseDataBlock{Invoke: invoke, BlockNumber: binary.BigEndian.Uint32(src[3:])}
	return
}

func (r SetResponseDataBlock) Tag() base.CosemTag {
	return base.TagSetResponse
}

func (r SetResponseDataBlock) setResponseTag() base.SetResponseTag {
	return base.TagSetResponseDataBlock
}

func (r SetResponseDataBlock) Bytes() ([]byte, error) {
	return []byte{
		byte(base.TagSetResponse), byte(base.TagSetResponseDataBlock), r.Invoke.ToByte(),
		byte(r.BlockNumber >> 24), byte(r.BlockNumber >> 16), byte(r.BlockNumber >> 8), byte(r.BlockNumber),
	}, nil
}

func (r SetResponseDataBlock) String() string {
	return fmt.Sprintf("set-response-datablock block %d", r.BlockNumber)
}

// SetResponseLastDataBlock terminates a block transfer write with the
// cumulative outcome.
type SetResponseLastDataBlock struct {
	Invoke      InvokeIdAndPriority
	Result      base.DlmsResultTag
	BlockNumber uint32
}

func NewSetResponseLastDataBlockFromSlice(src []byte) (r SetResponseLastDataBlock, err error) {
	invoke, err := decodesetresponseprefix(src, base.TagSetResponseLastDataBlock, setResponseLastDataBlockSize)
	if err != nil {
		return
	}
	r = SetResponseLastDataBlock{
		Invoke:      invoke,
		Result:      base.DlmsResultTag(src[3]),
		BlockNumber: binary.BigEndian.Uint32(src[4:]),
	}
	return
}

func (r SetResponseLastDataBlock) Tag() base.CosemTag {
	return base.TagSetResponse
}

func (r SetResponseLastDataBlock) setResponseTag() base.SetResponseTag {
	return base.TagSetResponseLastDataBlock
}

func (r SetResponseLastDataBlock) Bytes() ([]byte, error) {
	return []byte{
		byte(base.TagSetResponse), byte(base.TagSetResponseLastDataBlock), r.Invoke.ToByte(), byte(r.Result),
		byte(r.BlockNumber >> 24), byte(r.BlockNumber >> 16), byte(r.BlockNumber >> 8), byte(r.BlockNumber),
	}, nil
}

func (r SetResponseLastDataBlock) String() string {
	return fmt.Sprintf("set-response-last-datablock result %s block %d", r.Result, r.BlockNumber)
}

// SetResponseLastDataBlockWithList is a declared CHOICE member without a
// codec yet, every operation reports base.ErrNotImplemented.
type SetResponseLastDataBlockWithList struct{}

func NewSetResponseLastDataBlockWithListFromSlice([]byte) (SetResponseLastDataBlockWithList, error) {
	return SetResponseLastDataBlockWithList{}, fmt.Errorf("set-response-last-datablock-with-list: %w", base.ErrNotImplemented)
}

func (SetResponseLastDataBlockWithList) Tag() base.CosemTag {
	return base.TagSetResponse
}

func (SetResponseLastDataBlockWithList) setResponseTag() base.SetResponseTag {
	return base.TagSetResponseLastDataBlockWithList
}

func (SetResponseLastDataBlockWithList) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("set-response-last-datablock-with-list: %w", base.ErrNotImplemented)
}

// SetResponseWithList is a declared CHOICE member without a codec yet.
type SetResponseWithList struct{}

func NewSetResponseWithListFromSlice([]byte) (SetResponseWithList, error) {
	return SetResponseWithList{}, fmt.Errorf("set-response-with-list: %w", base.ErrNotImplemented)
}

func (SetResponseWithList) Tag() base.CosemTag {
	return base.TagSetResponse
}

func (SetResponseWithList) setResponseTag() base.SetResponseTag {
	return base.TagSetResponseWithList
}

func (SetResponseWithList) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("set-response-with-list: %w", base.ErrNotImplemented)
}

// NewSetResponseFromSlice inspects the choice byte and re-decodes the whole
// buffer through the matching variant, same contract as the request side.
func NewSetResponseFromSlice(src []byte) (SetResponse, error) {
	if len(src) < 2 {
		return nil, fmt.Errorf("set-response needs at least 2 bytes, got %d: %w", len(src), base.ErrLengthMismatch)
	}
	if src[0] != byte(base.TagSetResponse) {
		return nil, fmt.Errorf("got tag %02x, want %02x: %w", src[0], byte(base.TagSetResponse), base.ErrTagMismatch)
	}
	switch base.SetResponseTag(src[1]) {
	case base.TagSetResponseNormal:
		r, err := NewSetResponseNormalFromSlice(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case base.TagSetResponseDataBlock:
		r, err := NewSetResponseDataBlockFromSlice(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case base.TagSetResponseLastDataBlock:
		r, err := NewSetResponseLastDataBlockFromSlice(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case base.TagSetResponseLastDataBlockWithList:
		_, err := NewSetResponseLastDataBlockWithListFromSlice(src)
		return nil, err
	case base.TagSetResponseWithList:
		_, err := NewSetResponseWithListFromSlice(src)
		return nil, err
	default:
		return nil, fmt.Errorf("set-response choice %d: %w", src[1], base.ErrUnknownVariant)
	}
}
