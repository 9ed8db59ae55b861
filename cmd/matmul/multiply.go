package main

import (
	"fmt"
	"os"

	"github.com/fogfactory/matmul"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	multiplyLogFile string
	multiplyWorkers int
)

var multiplyCmd = &cobra.Command{
	Use:   "multiply <matrixA> <matrixB> <result>",
	Short: "Multiply two matrix files into a result file",
	Args:  cobra.ExactArgs(3),
	RunE:  runMultiply,
}

func init() {
	multiplyCmd.Flags().StringVar(&multiplyLogFile, "log", "", "append every computed cell to this intermediate log file")
	multiplyCmd.Flags().IntVar(&multiplyWorkers, "workers", 0, "worker pool size (0 = CPU count)")
	rootCmd.AddCommand(multiplyCmd)
}

func runMultiply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return multiplyFiles(logger, args[0], args[1], args[2], multiplyLogFile, cfg.workersOrDefault(multiplyWorkers))
}

// multiplyFiles loads both operands, multiplies them on the pool (with the
// intermediate cell log when logPath is set) and writes the product. Missing
// inputs are rejected before the core runs, and nothing is written on
// failure.
func multiplyFiles(logger *zap.Logger, aPath, bPath, outPath, logPath string, workers int) error {
	for _, path := range []string{aPath, bPath} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file %s not found", path)
		}
	}

	a, err := matmul.ReadMatrixFile(aPath)
	if err != nil {
		return err
	}
	b, err := matmul.ReadMatrixFile(bPath)
	if err != nil {
		return err
	}

	var c matmul.Matrix
	if logPath != "" {
		c, err = matmul.MultiplyLoggedWorkers(a, b, matmul.NewCellLog(logPath), workers)
	} else {
		c, err = matmul.MultiplyWorkers(a, b, workers)
	}
	if err != nil {
		return err
	}

	if err := matmul.WriteMatrixFile(outPath, c); err != nil {
		return err
	}
	logger.Info("result written",
		zap.String("file", outPath),
		zap.Int("workers", workers))
	if logPath != "" {
		logger.Info("intermediate cells written", zap.String("file", logPath))
	}
	return nil
}
