package base

import "errors"

// Decode and encode failures wrap one of these sentinels, match with errors.Is.
var (
	ErrTagMismatch    = errors.New("apdu tag mismatch")             // leading tag or choice tag differs from the decoder invoked
	ErrUnknownVariant = errors.New("unknown choice variant")        // choice byte outside the enumerated range
	ErrNotImplemented = errors.New("variant not implemented")       // recognized by the protocol, not decodable here
	ErrFieldInvariant = errors.New("field invariant violated")      // a decoded or constructed field breaks a variant rule
	ErrLengthMismatch = errors.New("length mismatch")               // declared length disagrees with available bytes
	ErrTrailingData   = errors.New("trailing data after apdu body") // bytes left over after a complete decode
)
