package cli

import (
	"fmt"

	"github.com/printtrace/printtrace-go/printtrace"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the linked PrintTrace library version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := printtrace.Version()
		if v == "" {
			fmt.Println("PrintTrace library not linked (built without cgo)")
			return
		}
		fmt.Printf("PrintTrace %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
