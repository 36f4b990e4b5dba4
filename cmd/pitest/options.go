package main

import (
	"context"

	"github.com/Pfoerd/pitest/history"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Returns the scan history store configured via --history-dsn, the
// PITEST_HISTORY_DSN environment variable, or the config file. A nil
// store with a nil error means no history was configured.
func getHistoryStore(ctx context.Context) (history.Store, error) {
	dsn := viper.GetString("history-dsn")
	if dsn == "" {
		return nil, nil
	}
	store, err := history.NewPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("scan history store connected")
	// One connection is shared by the per-file goroutines.
	return history.Synchronized(store), nil
}
