package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/paologalligit/seat-helper/client"
	"github.com/paologalligit/seat-helper/constant"
	"github.com/paologalligit/seat-helper/persistence"
	"github.com/paologalligit/seat-helper/seatmap"
)

func newSeatPlanClient(opts *rootOptions) (*client.SeatPlanClient, error) {
	clientOpts := &client.Options{Timeout: opts.cfg.HTTPTimeout}
	if opts.cfg.ProxyURL != "" {
		transport, err := client.NewTransportForProxy(opts.cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("error configuring proxy: %w", err)
		}
		clientOpts.Transport = transport
		log.Printf("[CLIENT] Routing seat plan requests through %s", opts.cfg.ProxyURL)
	}
	return client.New(clientOpts), nil
}

func newCache(opts *rootOptions, address seatmap.AddressFunc) (*seatmap.Cache, error) {
	c, err := newSeatPlanClient(opts)
	if err != nil {
		return nil, err
	}
	return seatmap.NewCache(address, seatmap.NewFetcher(c, opts.cfg.SeatPlanURL)), nil
}

// newSink wires the lookup log: a file and, when DATABASE_URL is set, postgres.
// The returned func releases the postgres pool.
func newSink(ctx context.Context, opts *rootOptions) (persistence.Persistence, func(), error) {
	var sinks persistence.Multi
	closeFn := func() {}
	if opts.cfg.LookupLogFile != "" {
		sinks = append(sinks, persistence.NewFilePersistence(opts.cfg.LookupLogFile))
	}
	if opts.cfg.DatabaseURL != "" {
		pool, err := persistence.NewPostgresPool(ctx, opts.cfg.DatabaseURL)
		if err != nil {
			return nil, closeFn, err
		}
		closeFn = pool.Close
		if opts.initSchema {
			if err := persistence.InitPostgresSchema(ctx, pool, constant.SCHEMA_FILE); err != nil {
				pool.Close()
				return nil, func() {}, err
			}
		}
		sinks = append(sinks, persistence.NewPostgresPersistence(pool))
	}
	if len(sinks) == 0 {
		return nil, closeFn, nil
	}
	return sinks, closeFn, nil
}
