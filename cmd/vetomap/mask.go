package main

import (
	"github.com/spf13/cobra"
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Remove detector regions from a veto map",
}

func init() {
	maskCmd.AddCommand(maskRegionsCmd)
	maskCmd.AddCommand(maskSubtractCmd)
}
