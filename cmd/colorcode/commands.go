package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tecu23/piece-color/internal/color"
	"github.com/tecu23/piece-color/pkg/binding"
)

const noCode = "-"

func newCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code <discriminant>...",
		Short: "Print the code for each discriminant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				res, err := binding.ParseLookup(arg)
				if err != nil {
					return fmt.Errorf("invalid discriminant %q: %w", arg, err)
				}

				code := noCode
				if res.Found() {
					code = *res.Code
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}

			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <code>",
		Short: "Print the discriminant for a color code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := color.ParseCode(args[0])
			if !ok {
				return fmt.Errorf("parse %q: %w", args[0], color.ErrUnknownCode)
			}

			fmt.Fprintln(cmd.OutOrStdout(), c.Discriminant())
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every color",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-12s  %s\n", "Discriminant", "Code")
			fmt.Fprintf(out, "  %-12s  %s\n", "------------", "----")
			for _, e := range binding.Table() {
				fmt.Fprintf(out, "  %-12d  %s\n", e.Discriminant, e.Code)
			}
		},
	}
}
