package xdlms

import (
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

type DlmsObis struct {
	A byte
	B byte
	C byte
	D byte
	E byte
	F byte
}

func (o DlmsObis) String() string {
	return fmt.Sprintf("%d-%d:%d.%d.%d.%d", o.A, o.B, o.C, o.D, o.E, o.F)
}

func (o DlmsObis) Bytes() []byte {
	return []byte{o.A, o.B, o.C, o.D, o.E, o.F}
}

func (o DlmsObis) EqualTo(o2 DlmsObis) bool {
	return o.A == o2.A && o.B == o2.B && o.C == o2.C && o.D == o2.D && o.E == o2.E && o.F == o2.F
}

func NewDlmsObisFromSlice(src []byte) (ob DlmsObis, err error) {
	if len(src) < 6 {
		err = fmt.Errorf("obis needs 6 bytes: %w", base.ErrLengthMismatch)
		return
	}
	return DlmsObis{A: src[0], B: src[1], C: src[2], D: src[3], E: src[4], F: src[5]}, nil
}

const attributeDescriptorSize = 9

// AttributeDescriptor is the fixed 9 byte cosem-attribute-descriptor:
// class id (2), obis (6), attribute id (1).
type AttributeDescriptor struct {
	ClassId   uint16
	Obis      DlmsObis
	Attribute int8
}

func NewAttributeDescriptorFromSlice(src []byte) (a AttributeDescriptor, err error) {
	if len(src) < attributeDescriptorSize {
		err = fmt.Errorf("attribute descriptor needs %d bytes: %w", attributeDescriptorSize, base.ErrLengthMismatch)
		return
	}
	a.ClassId = uint16(src[0])<<8 | uint16(src[1])
	a.Obis, _ = NewDlmsObisFromSlice(src[2:8])
	a.Attribute = int8(src[8])
	return
}

func (a AttributeDescriptor) Bytes() []byte {
	return []byte{
		byte(a.ClassId >> 8), byte(a.ClassId),
		a.Obis.A, a.Obis.B, a.Obis.C, a.Obis.D, a.Obis.E, a.Obis.F,
		byte(a.Attribute),
	}
}

func (a AttributeDescriptor) String() string {
	return fmt.Sprintf("class %d obis %s attribute %d", a.ClassId, a.Obis, a.Attribute)
}
