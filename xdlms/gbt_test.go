package xdlms_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meterwise/xdlms-go/base"
	"github.com/meterwise/xdlms-go/xdlms"
)

func musthex(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal %q: %v", s, err)
	}
	return raw
}

func TestGeneralBlockTransferLiteral(t *testing.T) {
	pdu := musthex(t, "e0830004000503616263")
	want := xdlms.GeneralBlockTransfer{
		Control:     xdlms.ControlOctet{LastBlock: true, Streaming: false, Window: 3},
		BlockNumber: 4,
		BlockAck:    5,
		BlockData:   []byte("abc"),
	}

	got, err := xdlms.NewGeneralBlockTransferFromSlice(pdu)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}

	out, err := want.Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(out, pdu) {
		t.Errorf("encode = %x, want %x", out, pdu)
	}
}

func TestGeneralBlockTransferRoundTrip(t *testing.T) {
	ctrl, err := xdlms.NewControlOctet(false, true, 63)
	if err != nil {
		t.Fatal(err)
	}
	g, err := xdlms.NewGeneralBlockTransfer(ctrl, 65535, 0, bytes.Repeat([]byte{0xaa}, 255))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := g.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	back, err := xdlms.NewGeneralBlockTransferFromSlice(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(g, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneralBlockTransferDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"wrong tag", "c1830004000503616263", base.ErrTagMismatch},
		{"short header", "e08300", base.ErrLengthMismatch},
		{"declared length short", "e08300040005056162", base.ErrLengthMismatch},
		{"trailing data", "e083000400050361626364", base.ErrTrailingData},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := xdlms.NewGeneralBlockTransferFromSlice(musthex(t, c.src))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestGeneralBlockTransferConstructorRanges(t *testing.T) {
	if _, err := xdlms.NewControlOctet(false, false, 64); !errors.Is(err, base.ErrFieldInvariant) {
		t.Errorf("window 64: got %v, want ErrFieldInvariant", err)
	}
	ctrl, err := xdlms.NewControlOctet(true, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xdlms.NewGeneralBlockTransfer(ctrl, 1, 0, make([]byte, 256)); !errors.Is(err, base.ErrFieldInvariant) {
		t.Errorf("oversized block data: got %v, want ErrFieldInvariant", err)
	}
	oversized := xdlms.GeneralBlockTransfer{Control: ctrl, BlockData: make([]byte, 256)}
	if _, err := oversized.Bytes(); !errors.Is(err, base.ErrFieldInvariant) {
		t.Errorf("encode oversized: got %v, want ErrFieldInvariant", err)
	}
}
