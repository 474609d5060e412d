package cmd

import (
	"fmt"

	"github.com/paologalligit/seat-helper/browser"
	"github.com/paologalligit/seat-helper/seatmap"
	"github.com/paologalligit/seat-helper/tooltip"
	"github.com/spf13/cobra"
)

func newAnnotateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "annotate <booking-url>",
		Short: "Open a booking page and set row/seat tooltips on every seat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			page, err := browser.Open(args[0], browser.Options{Headless: opts.cfg.Headless})
			if err != nil {
				return err
			}
			defer page.Close()

			cache, err := newCache(opts, page.Address)
			if err != nil {
				return err
			}
			sink, closeSink, err := newSink(ctx, opts)
			if err != nil {
				return err
			}
			defer closeSink()

			address, err := page.Address(ctx)
			if err != nil {
				return err
			}
			ref, err := seatmap.Locate(address)
			if err != nil {
				return err
			}
			handler := tooltip.NewHandler(tooltip.Options{
				Resolver: seatmap.NewResolver(cache),
				Sink:     sink,
				Session:  ref,
			})

			report, err := tooltip.Annotate(ctx, page, handler, opts.cfg.Workers)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🏁 Annotated %d of %d seats for %s/%s (%d failed, %d untitled)\n",
				report.Titled, len(report.Outcomes), ref.Cinema, ref.Session, report.Failed(), len(report.Untitled))
			return nil
		},
	}
}
