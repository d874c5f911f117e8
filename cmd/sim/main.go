package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"arenabot/policy"
	"arenabot/robot"
	"arenabot/sim"
	"arenabot/telemetry"
)

func main() {
	var policyName, paramsFile, out string
	var width, height float64
	var ticks, targets int
	var seed uint64
	flag.StringVar(&policyName, "policy", "reverser", "policy name")
	flag.StringVar(&paramsFile, "params", "", "policy params yaml")
	flag.StringVar(&out, "out", "", "summary file (stdout if empty)")
	flag.Float64Var(&width, "width", 1000, "map width")
	flag.Float64Var(&height, "height", 1000, "map height")
	flag.IntVar(&ticks, "ticks", 1000, "number of ticks")
	flag.IntVar(&targets, "targets", 3, "number of static targets")
	flag.Uint64Var(&seed, "seed", 12345, "seed")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "arenabot-sim")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer shutdown(context.Background())

	if err := run(ctx, policyName, paramsFile, out, width, height, ticks, targets, seed); err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, policyName, paramsFile, out string, width, height float64, ticks, targets int, seed uint64) error {
	params := policy.DefaultParams()
	if paramsFile != "" {
		var err error
		if params, err = policy.LoadParams(paramsFile); err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	bot, err := policy.New(policyName, params, rng)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, policy.Names())
	}

	field := sim.NewField(width, height)
	field.SetLogger(slog.Default().With("policy", policyName))
	for i := range targets {
		pos := robot.Position2D{X: rng.Float64() * width, Y: rng.Float64() * height}
		field.AddTarget(robot.BotID(i+1), fmt.Sprintf("target-%d", i+1), pos)
	}

	summary, err := sim.NewRunner(field, bot).Run(ctx, ticks)
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	if out == "" {
		_, err = fmt.Println(string(b))
		return err
	}
	if err := os.WriteFile(out, b, 0644); err != nil {
		return err
	}
	slog.InfoContext(ctx, "simulation finished", "ticks", summary.Ticks, "out", out)
	return nil
}
