// Package main provides the command-line interface for vcoresim.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vcoresim",
	Short: "vcoresim drives a cycle-level simulation of a SIMT core back-end",
	Long: "vcoresim simulates the per-core functional-unit back-end of a " +
		"many-core SIMT GPGPU pipeline: its ALU, FPU, LSU and SFU units and " +
		"the arbiter fabric between them, driven from a trace of warp-level " +
		"instructions.",
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
