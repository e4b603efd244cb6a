package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the vetomap toolkit.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vetomap version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vetomap", Version)
	},
}
