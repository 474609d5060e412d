package cmd

import (
	"time"

	"github.com/paologalligit/seat-helper/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfg config.Config

	seatPlanURL   string
	proxyURL      string
	timeout       time.Duration
	lookupLogFile string
	workers       int
	headed        bool
	initSchema    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "seat-helper",
		Short: "Row and seat labels for Pathé booking pages",
		Long: `seat-helper fetches the seat plan of a Pathé session once, builds a
row/seat lookup from it and resolves the seat element ids of the booking
page into human-readable row and seat labels.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.cfg = config.Load()
			flags := cmd.Flags()
			if flags.Changed("seat-plan-url") {
				opts.cfg.SeatPlanURL = opts.seatPlanURL
			}
			if flags.Changed("proxy") {
				opts.cfg.ProxyURL = opts.proxyURL
			}
			if flags.Changed("timeout") {
				opts.cfg.HTTPTimeout = opts.timeout
			}
			if flags.Changed("lookup-log") {
				opts.cfg.LookupLogFile = opts.lookupLogFile
			}
			if flags.Changed("workers") {
				opts.cfg.Workers = opts.workers
			}
			if flags.Changed("headed") {
				opts.cfg.Headless = !opts.headed
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.seatPlanURL, "seat-plan-url", "", "seat plan url template (env SEAT_PLAN_URL)")
	pf.StringVar(&opts.proxyURL, "proxy", "", "http, https or socks5 proxy url (env SEAT_PROXY_URL)")
	pf.DurationVar(&opts.timeout, "timeout", 0, "http timeout (env HTTP_TIMEOUT)")
	pf.StringVar(&opts.lookupLogFile, "lookup-log", "", "file receiving one JSON line per lookup (env LOOKUP_LOG_FILE)")
	pf.IntVarP(&opts.workers, "workers", "w", 0, "concurrent resolutions when annotating (env WORKERS)")
	pf.BoolVar(&opts.headed, "headed", false, "show the browser window (env HEADLESS=false)")
	pf.BoolVar(&opts.initSchema, "init-schema", false, "apply db/schema.sql before recording lookups to postgres")

	root.AddCommand(
		newLocateCmd(),
		newWarmCmd(opts),
		newResolveCmd(opts),
		newAnnotateCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
