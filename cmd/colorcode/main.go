// colorcode converts between piece color discriminants and codes.
//
// Usage:
//
//	colorcode code <n>...   - Print the code for each discriminant ("-" if none)
//	colorcode parse <code>  - Print the discriminant for "w" or "b"
//	colorcode list          - List every color
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "colorcode",
		Short: "Convert chess piece colors between discriminants and codes",
		Long: `colorcode maps piece color discriminants (1 = white, 2 = black)
to their one-character codes and back.

Examples:
  colorcode code 1 2 99
  colorcode parse b
  colorcode list`,
		SilenceUsage: true,
	}

	root.AddCommand(newCodeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newListCmd())

	return root
}
