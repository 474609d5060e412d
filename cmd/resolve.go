package cmd

import (
	"fmt"

	"github.com/paologalligit/seat-helper/seatmap"
	"github.com/paologalligit/seat-helper/tooltip"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "resolve <data-id>...",
		Short: "Resolve seat element ids into row and seat labels",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref, err := seatmap.Locate(address)
			if err != nil {
				return err
			}
			cache, err := newCache(opts, seatmap.StaticAddress(address))
			if err != nil {
				return err
			}
			sink, closeSink, err := newSink(ctx, opts)
			if err != nil {
				return err
			}
			defer closeSink()

			handler := tooltip.NewHandler(tooltip.Options{
				Resolver: seatmap.NewResolver(cache),
				Sink:     sink,
				Session:  ref,
			})

			out := cmd.OutOrStdout()
			failed := 0
			state := tooltip.HoverState{}
			for _, dataId := range args {
				target := tooltip.Target{DataId: dataId}
				state = tooltip.Enter(state, target)
				res := handler.Lookup(ctx, state, target)
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "%s\t❌ %v\n", dataId, res.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", dataId, tooltip.Text(res.Info))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d seats could not be resolved", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&address, "address", "a", "", "booking page address, e.g. '#/BAL/S12345'")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
