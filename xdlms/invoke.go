package xdlms

import (
	"fmt"

	"github.com/meterwise/xdlms-go/base"
)

const (
	invokeHighPriority = 0x80
	invokeConfirmed    = 0x40
	invokeIdMask       = 0x0f
)

// InvokeIdAndPriority is the single byte correlating requests to responses.
// Bit 7 carries the priority, bit 6 the service class, bits 0-3 the invoke id.
type InvokeIdAndPriority struct {
	InvokeId     byte
	Confirmed    bool
	HighPriority bool
}

func NewInvokeIdAndPriority(invokeid byte, confirmed bool, highpriority bool) (InvokeIdAndPriority, error) {
	if invokeid > invokeIdMask {
		return InvokeIdAndPriority{}, fmt.Errorf("invoke id %d out of range [0,15]: %w", invokeid, base.ErrFieldInvariant)
	}
	return InvokeIdAndPriority{InvokeId: invokeid, Confirmed: confirmed, HighPriority: highpriority}, nil
}

func NewInvokeIdAndPriorityFromByte(src byte) InvokeIdAndPriority {
	return InvokeIdAndPriority{
		InvokeId:     src & invokeIdMask,
		Confirmed:    src&invokeConfirmed != 0,
		HighPriority: src&invokeHighPriority != 0,
	}
}

func (i InvokeIdAndPriority) ToByte() byte {
	b := i.InvokeId & invokeIdMask
	if i.Confirmed {
		b |= invokeConfirmed
	}
	if i.HighPriority {
		b |= invokeHighPriority
	}
	return b
}

func (i InvokeIdAndPriority) String() string {
	return fmt.Sprintf("invoke %d confirmed %t high-priority %t", i.InvokeId, i.Confirmed, i.HighPriority)
}
