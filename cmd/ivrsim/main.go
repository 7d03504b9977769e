package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
	"github.com/m04kA/SMC-SalonService/internal/ivr/sim"
	"github.com/m04kA/SMC-SalonService/internal/tui"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "путь к config.toml")
	phone := flag.String("phone", "+46701234567", "номер звонящего по умолчанию")
	seed := flag.Int64("seed", 0, "seed генератора времени (0 - из конфига или случайный)")
	flag.Parse()

	// Без config.toml работаем на значениях по умолчанию
	cfg, err := config.Load(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Parse("")
	}
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout занят интерфейсом, поэтому логи только в файл
	log, err := logger.NewFile(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if *seed == 0 {
		*seed = cfg.IVR.SimSeed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("Starting IVR terminal simulator (seed=%d)", *seed)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	holds := sim.NewMemoryHolds()
	engine := ivr.NewEngine(
		ivr.NewRegistry(),
		sim.NewRandomSlots(rand.New(rand.NewSource(*seed)), cfg.IVR.SlotCount),
		holds,
		holds,
		log,
		ivr.WithIdleTimeout(cfg.IVR.IdleTimeoutDuration()),
	)
	engine.StartJanitor(ctx, cfg.IVR.JanitorIntervalDuration())

	if err := tui.Run(ctx, engine, sim.StaticCatalog{}, *phone); err != nil {
		log.Error("IVR simulator stopped with error: %v", err)
		fmt.Printf("IVR simulator failed: %v\n", err)
		os.Exit(1)
	}
}
