package cmd

import (
	"fmt"

	"github.com/paologalligit/seat-helper/seatmap"
	"github.com/spf13/cobra"
)

func newWarmCmd(opts *rootOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Fetch and build the seat map of a session without resolving anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := newCache(opts, seatmap.StaticAddress(address))
			if err != nil {
				return err
			}
			m, err := cache.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🪑 Seat map ready: %d rows, %d seats\n", m.Len(), m.Seats())
			return nil
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "booking page address, e.g. '#/BAL/S12345'")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
