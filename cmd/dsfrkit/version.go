package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/dsfrkit"
	"github.com/yacobolo/dsfrkit/internal/dsfr"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/dsfrkit
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of dsfrkit",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dsfrkit %s (report format %s, DSFR %s)\n", version, dsfrkit.ReportVersion, dsfr.DSFRVersion)
	},
}
