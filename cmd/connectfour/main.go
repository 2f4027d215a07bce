package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iamasit07/connect-four/internal/analytics"
	"github.com/iamasit07/connect-four/internal/config"
	"github.com/iamasit07/connect-four/internal/logger"
	"github.com/iamasit07/connect-four/internal/service/match"
	"github.com/iamasit07/connect-four/internal/service/setup"
	"github.com/iamasit07/connect-four/internal/transport/console"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	// 1. Environment and configuration
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		return 1
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}

	// 2. Match events, disabled without brokers
	producer := analytics.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.PublishTimeout, log)
	defer producer.Close()

	// 3. Console, setup and match
	term := console.New(os.Stdin, os.Stdout)
	firstSign, secondSign := cfg.Signs()

	settings, err := setup.NewService(term, firstSign, secondSign, log).Collect()
	if err != nil {
		return exitCode(log, err)
	}

	ctx := context.Background()
	if err := match.NewService(term, producer, log).Run(ctx, settings); err != nil {
		return exitCode(log, err)
	}
	return 0
}

// exitCode treats closed input as a normal way to leave the game.
func exitCode(log *zap.Logger, err error) int {
	if errors.Is(err, io.EOF) {
		log.Info("input closed", zap.Error(err))
		return 0
	}
	log.Error("connect four stopped", zap.Error(err))
	return 1
}
