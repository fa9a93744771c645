package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meterwise/xdlms-go/xdlms"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <vectors.yaml>",
		Short: "Run decode/encode round-trip checks over a vector manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sugar := logger.Sugar()

			vf, err := xdlms.LoadVectors(args[0])
			if err != nil {
				return err
			}
			failed := 0
			for i := range vf.Vectors {
				v := &vf.Vectors[i]
				if err := v.Verify(); err != nil {
					sugar.Errorw("vector failed", "name", v.Name, "error", err)
					failed++
					continue
				}
				sugar.Infow("vector ok", "name", v.Name, "family", v.Family)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d vectors failed", failed, len(vf.Vectors))
			}
			sugar.Infof("all %d vectors passed", len(vf.Vectors))
			return nil
		},
	}
}
