package xdlms

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/meterwise/xdlms-go/base"
)

// Vector families understood by Verify.
const (
	FamilySetRequest           = "set-request"
	FamilySetResponse          = "set-response"
	FamilyGeneralBlockTransfer = "general-block-transfer"
)

// Vector is one named canonical apdu, hex encoded. A vector passes when the
// buffer decodes through its family dispatcher and re-encodes to the exact
// original bytes.
type Vector struct {
	Name   string `yaml:"name"`
	Family string `yaml:"family"`
	Apdu   string `yaml:"apdu"`
}

// VectorFile is a YAML manifest of conformance vectors.
type VectorFile struct {
	Vectors []Vector `yaml:"vectors"`
}

func LoadVectors(path string) (*VectorFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vector file: %w", err)
	}
	var vf VectorFile
	if err := yaml.Unmarshal(raw, &vf); err != nil {
		return nil, fmt.Errorf("parse vector file: %w", err)
	}
	if len(vf.Vectors) == 0 {
		return nil, fmt.Errorf("no vectors in %s", path)
	}
	return &vf, nil
}

func (v *Vector) apdubytes() ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, v.Apdu)
	return hex.DecodeString(cleaned)
}

// Decode parses the vector through its family dispatcher.
func (v *Vector) Decode() (Apdu, error) {
	raw, err := v.apdubytes()
	if err != nil {
		return nil, fmt.Errorf("vector %s: %w", v.Name, err)
	}
	var a Apdu
	switch v.Family {
	case FamilySetRequest:
		a, err = NewSetRequestFromSlice(raw)
	case FamilySetResponse:
		a, err = NewSetResponseFromSlice(raw)
	case FamilyGeneralBlockTransfer:
		a, err = NewGeneralBlockTransferFromSlice(raw)
	default:
		return nil, fmt.Errorf("vector %s: family %q: %w", v.Name, v.Family, base.ErrUnknownVariant)
	}
	if err != nil {
		return nil, fmt.Errorf("vector %s: %w", v.Name, err)
	}
	return a, nil
}

// Verify checks the decode/encode round trip against the canonical bytes.
func (v *Vector) Verify() error {
	raw, err := v.apdubytes()
	if err != nil {
		return fmt.Errorf("vector %s: %w", v.Name, err)
	}
	a, err := v.Decode()
	if err != nil {
		return err
	}
	out, err := a.Bytes()
	if err != nil {
		return fmt.Errorf("vector %s: %w", v.Name, err)
	}
	if !bytes.Equal(out, raw) {
		return fmt.Errorf("vector %s: re-encode mismatch, got %x want %x", v.Name, out, raw)
	}
	return nil
}
