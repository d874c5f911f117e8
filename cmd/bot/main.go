package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"arenabot/application"
	"arenabot/domain"
	"arenabot/handler"
	"arenabot/policy"
	"arenabot/server"
	"arenabot/telemetry"
	"arenabot/utils"
)

func main() {
	if err := run(); err != nil {
		slog.Error("bot runner failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, "arenabot")
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Warn("telemetry shutdown failed", "err", err)
		}
	}()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "9090")
	policyName := utils.GetEnvDefault("BOT_POLICY", "reverser")
	botCountStr := utils.GetEnvDefault("BOT_COUNT", "1")
	botCount, err := strconv.Atoi(botCountStr)
	if err != nil {
		return fmt.Errorf("invalid BOT_COUNT %q: %w", botCountStr, err)
	}

	params := policy.DefaultParams()
	if path := os.Getenv("PARAMS_FILE"); path != "" {
		if params, err = policy.LoadParams(path); err != nil {
			return err
		}
	}

	roomID, err := domain.ParseRoomID(os.Getenv("ROOM_ID"))
	if err != nil {
		return fmt.Errorf("invalid ROOM_ID: %w", err)
	}

	serverURL := fmt.Sprintf("ws://%s:%s/ws", addr, port)
	fleet, err := application.NewFleet(application.FleetConfig{
		URL:    serverURL,
		Policy: policyName,
		Params: params,
		Count:  botCount,
		Name:   utils.GetEnvDefault("BOT_NAME", policyName),
		RoomID: roomID,
		Secret: os.Getenv("BOT_SECRET"),
		Seed:   uint64(time.Now().UnixNano()),
	})
	if err != nil {
		return err
	}

	health := server.NewServer(utils.GetEnvDefault("HEALTH_ADDR", ":8081"), server.Route(handler.NewHealthHandler(fleet)))

	slog.InfoContext(ctx, "starting bots", "count", botCount, "policy", policyName, "server", serverURL, "room", roomID)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return fleet.Run(ctx)
	})
	eg.Go(func() error {
		return health.Serve()
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return health.Shutdown(shutdownCtx)
	})

	err = eg.Wait()
	slog.Info("all bots stopped")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
