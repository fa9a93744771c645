package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meterwise/xdlms-go/base"
	"github.com/meterwise/xdlms-go/xdlms"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex-apdu>...",
		Short: "Decode hex encoded APDUs and print their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sugar := logger.Sugar()

			for _, arg := range args {
				raw, err := hex.DecodeString(strings.ReplaceAll(arg, " ", ""))
				if err != nil {
					return fmt.Errorf("argument %q is not hex: %w", arg, err)
				}
				a, err := decodeany(raw)
				if err != nil {
					return err
				}
				xdlms.Describe(sugar, a)
			}
			return nil
		},
	}
}

// decodeany dispatches on the leading tag byte.
func decodeany(raw []byte) (xdlms.Apdu, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty apdu: %w", base.ErrLengthMismatch)
	}
	switch base.CosemTag(raw[0]) {
	case base.TagSetRequest:
		return xdlms.NewSetRequestFromSlice(raw)
	case base.TagSetResponse:
		return xdlms.NewSetResponseFromSlice(raw)
	case base.TagGeneralBlockTransfer:
		return xdlms.NewGeneralBlockTransferFromSlice(raw)
	default:
		return nil, fmt.Errorf("tag %02x is not a supported apdu family: %w", raw[0], base.ErrTagMismatch)
	}
}
