package xdlms_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meterwise/xdlms-go/base"
	"github.com/meterwise/xdlms-go/xdlms"
)

func TestSetResponseNormalRoundTrip(t *testing.T) {
	pdu := musthex(t, "c501c103")
	want := xdlms.SetResponseNormal{
		Invoke: xdlms.InvokeIdAndPriority{InvokeId: 1, Confirmed: true, HighPriority: true},
		Result: base.TagResultReadWriteDenied,
	}

	got, err := xdlms.NewSetResponseNormalFromSlice(pdu)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
	out, err := got.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, pdu) {
		t.Errorf("encode = %x, want %x", out, pdu)
	}
}

func TestSetResponseDataBlockRoundTrip(t *testing.T) {
	pdu := musthex(t, "c50241000004d2")
	want := xdlms.SetResponseDataBlock{
		Invoke:      xdlms.InvokeIdAndPriority{InvokeId: 1, Confirmed: true},
		BlockNumber: 1234,
	}

	got, err := xdlms.NewSetResponseDataBlockFromSlice(pdu)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
	out, err := got.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, pdu) {
		t.Errorf("encode = %x, want %x", out, pdu)
	}
}

func TestSetResponseLastDataBlockRoundTrip(t *testing.T) {
	pdu := musthex(t, "c5034100000004d2")
	want := xdlms.SetResponseLastDataBlock{
		Invoke:      xdlms.InvokeIdAndPriority{InvokeId: 1, Confirmed: true},
		Result:      base.TagResultSuccess,
		BlockNumber: 1234,
	}

	got, err := xdlms.NewSetResponseLastDataBlockFromSlice(pdu)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
	out, err := got.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, pdu) {
		t.Errorf("encode = %x, want %x", out, pdu)
	}
}

func TestSetResponseDispatcherEquivalence(t *testing.T) {
	pdu := musthex(t, "c501c100")
	direct, err := xdlms.NewSetResponseNormalFromSlice(pdu)
	if err != nil {
		t.Fatal(err)
	}
	dispatched, err := xdlms.NewSetResponseFromSlice(pdu)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(direct, dispatched); diff != "" {
		t.Errorf("dispatcher mismatch (-direct +dispatched):\n%s", diff)
	}
}

func TestSetResponseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"wrong tag", "c101c100", base.ErrTagMismatch},
		{"unknown variant", "c506c100", base.ErrUnknownVariant},
		{"not implemented last with list", "c504c100", base.ErrNotImplemented},
		{"not implemented with list", "c505c100", base.ErrNotImplemented},
		{"truncated normal", "c501c1", base.ErrLengthMismatch},
		{"trailing after normal", "c501c10000", base.ErrTrailingData},
		{"truncated datablock", "c502410000", base.ErrLengthMismatch},
		{"trailing after last datablock", "c5034100000004d2ff", base.ErrTrailingData},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := xdlms.NewSetResponseFromSlice(musthex(t, c.src))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}
