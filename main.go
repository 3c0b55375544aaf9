package main

import (
	"context"

	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/bootstrap"
	"github.com/Mohan3458/Human-Capital-Performance-and-Attrition-Analysis/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.Info(ctx, "HR analytics engine listening")
	if err := app.Run(); err != nil {
		logger.Error(ctx, "server stopped", err)
		panic(err)
	}
}
