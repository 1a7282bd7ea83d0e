package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/quintans/lineards/internal/app"
	"github.com/quintans/lineards/internal/app/services"
	"github.com/quintans/lineards/internal/config"
	"github.com/quintans/lineards/internal/lib/render"
)

func main() {
	cfgPath := flag.String("config", "", "settings JSON file")
	flag.Parse()

	settings, err := config.Load(*cfgPath)
	if err != nil {
		panic(fmt.Sprintf("loading settings: %s", err))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel()}))
	slog.SetDefault(logger)
	slog.Info("starting", "name", app.Name, "version", app.Version, "style", settings.Style(), "capacity", settings.QueueCapacity())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	printer := render.NewPrinter(os.Stdout, settings.Style())
	demo := services.NewDemo(printer, app.DemoSettings{
		QueueCapacity: settings.QueueCapacity(),
		QueueSeed:     settings.QueueSeed(),
		StackFrom:     settings.StackSeed().From,
		StackTo:       settings.StackSeed().To,
	})

	err = demo.Run(ctx)
	if err != nil {
		slog.Error("demo failed", "error", err)
		stop()
		os.Exit(1)
	}
}
