package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xdlmsdump",
		Short: "Decode and verify xDLMS Set and General-Block-Transfer APDUs",
		Long: `xdlmsdump decodes hex encoded xDLMS APDUs (Set-Request, Set-Response,
General-Block-Transfer) and runs round-trip checks over YAML vector manifests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newVerifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("xdlmsdump %s (%s)\n", version, commit)
		},
	}
}
