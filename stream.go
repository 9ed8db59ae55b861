package matmul

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// StreamConfig drives RunStream. Both generators share Count, so runs with
// unequal generator counts are unrepresentable.
type StreamConfig struct {
	// Size is the dimension of the square matrices, > 0.
	Size int
	// Count is how many matrices each generator emits, >= 0.
	Count int
	// Workers is the pool size of each multiply; 0 means the CPU count.
	Workers int
	// Seed seeds the generators' randomness; 0 seeds from the clock.
	Seed int64
	// Delay is an optional pause after each generated matrix, for demo
	// pacing. Zero in normal use.
	Delay time.Duration
	// Logger receives per-actor progress events; nil disables logging.
	Logger *zap.Logger
}

func (cfg StreamConfig) validate() error {
	if cfg.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidStreamConfig, cfg.Size)
	}
	if cfg.Count < 0 {
		return fmt.Errorf("%w: count %d", ErrInvalidStreamConfig, cfg.Count)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidStreamConfig, cfg.Workers)
	}
	return nil
}

// RunStream runs the generate-and-multiply pipeline: two generators each push
// Count random Size×Size matrices onto their own channel and close it, a
// multiplier actor pulls one matrix from each (A first, then B), multiplies
// the pair on the worker pool and forwards the product, and the calling
// goroutine drains the products and counts them.
//
// A closed input channel is the end-of-stream signal: the multiplier stops at
// the first one it observes and closes the product channel in turn. RunStream
// returns the number of completed products after all three actors have been
// joined. There is no cancellation; a stalled actor stalls the pipeline.
func RunStream(cfg StreamConfig) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	chA := make(chan Matrix)
	chB := make(chan Matrix)
	products := make(chan Matrix)

	var wg sync.WaitGroup
	wg.Add(3)
	go generate(&wg, cfg, "A", rand.New(rand.NewSource(seed)), chA, logger)
	go generate(&wg, cfg, "B", rand.New(rand.NewSource(seed+1)), chB, logger)

	var multErr error
	go func() {
		defer wg.Done()
		defer close(products)
		defer func() {
			// Unblock a generator still pushing after an early stop.
			go func() {
				for range chA {
				}
			}()
			go func() {
				for range chB {
				}
			}()
		}()
		for {
			a, ok := <-chA
			if !ok {
				logger.Info("multiplier done", zap.String("reason", "input A closed"))
				return
			}
			b, ok := <-chB
			if !ok {
				logger.Info("multiplier done", zap.String("reason", "input B closed"))
				return
			}
			product, err := MultiplyWorkers(a, b, workers)
			if err != nil {
				multErr = err
				logger.Error("multiplier failed", zap.Error(err))
				return
			}
			products <- product
			logger.Info("multiplied pair")
		}
	}()

	completed := 0
	for range products {
		completed++
		logger.Info("received product", zap.Int("completed", completed))
	}

	wg.Wait()
	if multErr != nil {
		return 0, fmt.Errorf("stream multiply: %w", multErr)
	}
	logger.Info("stream complete", zap.Int("completed", completed))
	return completed, nil
}

// generate emits cfg.Count random square matrices on out in generation order,
// then closes out and returns. No further activity after the close.
func generate(wg *sync.WaitGroup, cfg StreamConfig, tag string, rng *rand.Rand, out chan<- Matrix, logger *zap.Logger) {
	defer wg.Done()
	defer close(out)
	for i := 0; i < cfg.Count; i++ {
		out <- Random(cfg.Size, rng)
		logger.Info("generated matrix", zap.String("generator", tag), zap.Int("index", i+1))
		if cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}
	}
	logger.Info("generator done", zap.String("generator", tag), zap.Int("count", cfg.Count))
}
