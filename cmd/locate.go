package cmd

import (
	"fmt"

	"github.com/paologalligit/seat-helper/seatmap"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <address>",
		Short: "Print the cinema and session encoded in a booking page address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := seatmap.Locate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cinema=%s session=%s\n", ref.Cinema, ref.Session)
			return nil
		},
	}
}
