package main

import (
	"context"
	"log"

	"github.com/hwpark/zrxmatch/params"
	"github.com/hwpark/zrxmatch/pkg/scenario"
	"github.com/hwpark/zrxmatch/pkg/util"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("") // "" means load from .env in current directory

	logger, err := util.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	demo := &scenario.MatchOrders{
		Config: cfg,
		Logger: sugar,
	}

	// One-shot run: any failure is logged once; the provider is torn down
	// inside Run on both paths.
	if err := demo.Run(context.Background()); err != nil {
		sugar.Fatalw("match_orders_failed", "err", err)
	}
	sugar.Infow("match_orders_complete")
}
