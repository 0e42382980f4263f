package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"detective_quest/internal/adapters"
	"detective_quest/internal/bootstrap"
	consoleDelivery "detective_quest/internal/delivery/console"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const envFile = ".env"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "detective-quest",
		Short:        "Explore the mansion, collect clues and accuse a suspect",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), envFile)
		},
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := bootstrap.Setup(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to setup configuration: %w", err)
	}

	logger, err := NewLogger(*cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go handleShutdown(cancel, logger)

	metrics := adapters.NewAdapterMetrics(logger)
	if err := metrics.Init(ctx); err != nil {
		logger.Errorw("failed to init metrics", "error", err)
		return err
	}
	defer metrics.Close(ctx)

	var in consoleDelivery.InputReader
	if cfg.PlainOutput {
		in = consoleDelivery.NewLineReader(os.Stdin, os.Stdout)
	} else {
		in = consoleDelivery.NewInputReader(os.Stdin, os.Stdout)
	}

	handler, err := consoleDelivery.NewConsoleHandler(*cfg, logger, metrics, in, os.Stdout)
	if err != nil {
		logger.Errorw("failed to initialize console", "error", err)
		return err
	}

	if err := handler.Run(ctx); err != nil {
		logger.Errorw("session aborted", "error", err)
		return err
	}
	return nil
}

func NewLogger(cfg bootstrap.Config) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.LogOutput}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.Sugar(), nil
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.Infow("received shutdown signal", "signal", sig.String())
	cancelFunc()
	_ = log.Sync()
	// Выход без отложенных Close: сессия не закрывается и итоговые метрики
	// не пишутся. Блокирующее чтение stdin контекстом не прерывается, а у
	// ядра игры нет пути отмены, поэтому процесс просто завершается.
	os.Exit(130)
}
