package xdlms

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

// SetRequest is the closed five way CHOICE carried under tag 0xC1. Every
// variant is a member even when this codec cannot decode it yet, so missing
// coverage shows up as base.ErrNotImplemented instead of an unknown tag.
type SetRequest interface {
	Apdu
	setRequestTag() base.SetRequestTag
}

const (
	setRequestPrefixSize = 13 // tag, choice, invoke, descriptor (9), access flag
	firstBlockNumber     = 1
)

// decodesetrequestprefix consumes the shared variant prefix and returns the
// remainder of the buffer after the access selection flag.
func decodesetrequestprefix(src []byte, want base.SetRequestTag) (invoke InvokeIdAndPriority, attr AttributeDescriptor, rest []byte, err error) {
	if len(src) < setRequestPrefixSize {
		err = fmt.Errorf("set-request needs at least %d bytes, got %d: %w", setRequestPrefixSize, len(src), base.ErrLengthMismatch)
		return
	}
	if src[0] != byte(base.TagSetRequest) {
		err = fmt.Errorf("got tag %02x, want %02x: %w", src[0], byte(base.TagSetRequest), base.ErrTagMismatch)
		return
	}
	if base.SetRequestTag(src[1]) != want {
		err = fmt.Errorf("got set-request choice %d, want %d: %w", src[1], want, base.ErrTagMismatch)
		return
	}
	invoke = NewInvokeIdAndPriorityFromByte(src[2])
	attr, err = NewAttributeDescriptorFromSlice(src[3:12])
	if err != nil {
		return
	}
	if src[12] != 0 {
		err = fmt.Errorf("selective access on set: %w", base.ErrNotImplemented)
		return
	}
	rest = src[setRequestPrefixSize:]
	return
}

func encodesetrequestprefix(dst *bytes.Buffer, choice base.SetRequestTag, invoke InvokeIdAndPriority, attr AttributeDescriptor, access []byte) {
	dst.WriteByte(byte(base.TagSetRequest))
	dst.WriteByte(byte(choice))
	dst.WriteByte(invoke.ToByte())
	dst.Write(attr.Bytes())
	if access != nil {
		dst.WriteByte(1)
		dst.Write(access)
	} else {
		dst.WriteByte(0)
	}
}

// SetRequestNormal writes a single attribute value in one PDU. Data holds
// the raw A-XDR encoded value, this codec does not interpret it.
type SetRequestNormal struct {
	Invoke          InvokeIdAndPriority
	Attribute       AttributeDescriptor
	AccessSelection []byte // raw selective-access descriptor, nil when absent
	Data            []byte
}

func NewSetRequestNormalFromSlice(src []byte) (r SetRequestNormal, err error) {
	invoke, attr, rest, err := decodesetrequestprefix(src, base.TagSetRequestNormal)
	if err != nil {
		return
	}
	r = SetRequestNormal{Invoke: invoke, Attribute: attr, Data: newcopy(rest)}
	return
}

func (r SetRequestNormal) Tag() base.CosemTag {
	return base.TagSetRequest
}

func (r SetRequestNormal) setRequestTag() base.SetRequestTag {
	return base.TagSetRequestNormal
}

func (r SetRequestNormal) Bytes() ([]byte, error) {
	var local bytes.Buffer
	local.Grow(setRequestPrefixSize + len(r.AccessSelection) + len(r.Data))
	encodesetrequestprefix(&local, base.TagSetRequestNormal, r.Invoke, r.Attribute, r.AccessSelection)
	local.Write(r.Data)
	return local.Bytes(), nil
}

func (r SetRequestNormal) String() string {
	return fmt.Sprintf("set-request-normal %s value %d bytes", r.Attribute, len(r.Data))
}

// SetRequestWithFirstDataBlock opens a block transfer write. It can only
// represent the first block, last-block is always false and the block number
// always 1 on the wire; Data holds the first fragment of the value.
type SetRequestWithFirstDataBlock struct {
	Invoke          InvokeIdAndPriority
	Attribute       AttributeDescriptor
	AccessSelection []byte
	Data            []byte
}

func NewSetRequestWithFirstDataBlockFromSlice(src []byte) (r SetRequestWithFirstDataBlock, err error) {
	invoke, attr, rest, err := decodesetrequestprefix(src, base.TagSetRequestWithFirstDataBlock)
	if err != nil {
		return
	}
	if len(rest) < 5 {
		err = fmt.Errorf("first datablock header needs 5 bytes, got %d: %w", len(rest), base.ErrLengthMismatch)
		return
	}
	if rest[0] != 0 {
		err = fmt.Errorf("last block set in a first datablock: %w", base.ErrFieldInvariant)
		return
	}
	blno := binary.BigEndian.Uint32(rest[1:])
	if blno != firstBlockNumber {
		err = fmt.Errorf("block number %d in a first datablock, want %d: %w", blno, firstBlockNumber, base.ErrFieldInvariant)
		return
	}
	dlen, n, err := decodelength(rest[5:])
	if err != nil {
		return
	}
	data := rest[5+n:]
	if uint(len(data)) < dlen {
		err = fmt.Errorf("block data declares %d bytes, %d available: %w", dlen, len(data), base.ErrLengthMismatch)
		return
	}
	if uint(len(data)) > dlen {
		err = fmt.Errorf("%d bytes after block data: %w", uint(len(data))-dlen, base.ErrTrailingData)
		return
	}
	r = SetRequestWithFirstDataBlock{Invoke: invoke, Attribute: attr, Data: newcopy(data)}
	return
}

func (r SetRequestWithFirstDataBlock) Tag() base.CosemTag {
	return base.TagSetRequest
}

func (r SetRequestWithFirstDataBlock) setRequestTag() base.SetRequestTag {
	return base.TagSetRequestWithFirstDataBlock
}

func (r SetRequestWithFirstDataBlock) Bytes() ([]byte, error) {
	var local bytes.Buffer
	local.Grow(setRequestPrefixSize + len(r.AccessSelection) + 5 + codedlength(uint(len(r.Data))) + len(r.Data))
	encodesetrequestprefix(&local, base.TagSetRequestWithFirstDataBlock, r.Invoke, r.Attribute, r.AccessSelection)
	local.WriteByte(0) // last block
	local.WriteByte(0)
	local.WriteByte(0)
	local.WriteByte(0)
	local.WriteByte(firstBlockNumber)
	encodelength(&local, uint(len(r.Data)))
	local.Write(r.Data)
	return local.Bytes(), nil
}

func (r SetRequestWithFirstDataBlock) String() string {
	return fmt.Sprintf("set-request-with-first-datablock %s fragment %d bytes", r.Attribute, len(r.Data))
}

// SetRequestWithDataBlock is a declared CHOICE member without a codec yet,
// every operation reports base.ErrNotImplemented.
type SetRequestWithDataBlock struct{}

func NewSetRequestWithDataBlockFromSlice([]byte) (SetRequestWithDataBlock, error) {
	return SetRequestWithDataBlock{}, fmt.Errorf("set-request-with-datablock: %w", base.ErrNotImplemented)
}

func (SetRequestWithDataBlock) Tag() base.CosemTag {
	return base.TagSetRequest
}

func (SetRequestWithDataBlock) setRequestTag() base.SetRequestTag {
	return base.TagSetRequestWithDataBlock
}

func (SetRequestWithDataBlock) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("set-request-with-datablock: %w", base.ErrNotImplemented)
}

// SetRequestWithList is a declared CHOICE member without a codec yet.
type SetRequestWithList struct{}

func NewSetRequestWithListFromSlice([]byte) (SetRequestWithList, error) {
	return SetRequestWithList{}, fmt.Errorf("set-request-with-list: %w", base.ErrNotImplemented)
}

func (SetRequestWithList) Tag() base.CosemTag {
	return base.TagSetRequest
}

func (SetRequestWithList) setRequestTag() base.SetRequestTag {
	return base.TagSetRequestWithList
}

func (SetRequestWithList) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("set-request-with-list: %w", base.ErrNotImplemented)
}

// SetRequestWithListAndFirstDataBlock is a declared CHOICE member without a
// codec yet.
type SetRequestWithListAndFirstDataBlock struct{}

func NewSetRequestWithListAndFirstDataBlockFromSlice([]byte) (SetRequestWithListAndFirstDataBlock, error) {
	return SetRequestWithListAndFirstDataBlock{}, fmt.Errorf("set-request-with-list-and-first-datablock: %w", base.ErrNotImplemented)
}

func (SetRequestWithListAndFirstDataBlock) Tag() base.CosemTag {
	return base.TagSetRequest
}

func (SetRequestWithListAndFirstDataBlock) setRequestTag() base.SetRequestTag {
	return base.TagSetRequestWithListAndFirstDataBlock
}

func (SetRequestWithListAndFirstDataBlock) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("set-request-with-list-and-first-datablock: %w", base.ErrNotImplemented)
}

// NewSetRequestFromSlice inspects the choice byte and re-decodes the whole
// buffer through the matching variant, it extracts no fields itself.
func NewSetRequestFromSlice(src []byte) (SetRequest, error) {
	if len(src) < 2 {
		return nil, fmt.Errorf("set-request needs at least 2 bytes, got %d: %w", len(src), base.ErrLengthMismatch)
	}
	if src[0] != byte(base.TagSetRequest) {
		return nil, fmt.Errorf("got tag %02x, want %02x: %w", src[0], byte(base.TagSetRequest), base.ErrTagMismatch)
	}
	switch base.SetRequestTag(src[1]) {
	case base.TagSetRequestNormal:
		r, err := NewSetRequestNormalFromSlice(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case base.TagSetRequestWithFirstDataBlock:
		r, err := NewSetRequestWithFirstDataBlockFromSlice(src)
		if err != nil {
			return nil, err
		}
		return r, nil
	case base.TagSetRequestWithDataBlock:
		_, err := NewSetRequestWithDataBlockFromSlice(src)
		return nil, err
	case base.TagSetRequestWithList:
		_, err := NewSetRequestWithListFromSlice(src)
		return nil, err
	case base.TagSetRequestWithListAndFirstDataBlock:
		_, err := NewSetRequestWithListAndFirstDataBlockFromSlice(src)
		return nil, err
	default:
		return nil, fmt.Errorf("set-request choice %d: %w", src[1], base.ErrUnknownVariant)
	}
}
