// Package xdlms implements the xDLMS APDU codecs for the DLMS/COSEM
// attribute-write exchange and the generic block transfer envelope.
//
// The package covers byte-level encoding and decoding only:
//   - Set-Request (tag 0xC1) and Set-Response (tag 0xC5), each a five way
//     CHOICE selected by the byte following the tag
//   - General-Block-Transfer (tag 0xE0) used to fragment oversized payloads
//
// Every APDU is an immutable value, produced either by a validated
// constructor or by a NewXxxFromSlice decoder, and turned back into wire
// bytes with Bytes. Decoding either yields a fully valid value or an error
// wrapping one of the sentinels in the base package; there is no partial
// result. Driving a multi-block conversation, transport framing, ciphering
// and the interpretation of attribute value bytes all live above or below
// this layer.
package xdlms

import "github.com/meterwise/xdlms-go/base"

// Apdu is the capability every concrete message type fulfills on its own,
// there is no shared implementation behind it.
type Apdu interface {
	Tag() base.CosemTag
	Bytes() ([]byte, error)
}
