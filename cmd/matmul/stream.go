package main

import (
	"github.com/fogfactory/matmul"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	streamSize    int
	streamCount   int
	streamWorkers int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Generate and multiply random matrix pairs through the pipeline",
	RunE:  runStream,
}

func init() {
	streamCmd.Flags().IntVar(&streamSize, "size", 100, "dimension of the square matrices")
	streamCmd.Flags().IntVar(&streamCount, "count", 5, "matrix pairs to generate and multiply")
	streamCmd.Flags().IntVar(&streamWorkers, "workers", 0, "worker pool size per multiply (0 = CPU count)")
	rootCmd.AddCommand(streamCmd)
}

func runStream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return streamDemo(logger, cfg, streamSize, streamCount, cfg.workersOrDefault(streamWorkers))
}

func streamDemo(logger *zap.Logger, cfg Config, size, count, workers int) error {
	completed, err := matmul.RunStream(matmul.StreamConfig{
		Size:    size,
		Count:   count,
		Workers: workers,
		Delay:   cfg.GenDelay,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	logger.Info("all pairs multiplied", zap.Int("completed", completed))
	return nil
}
