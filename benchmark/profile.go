package benchmark

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/fogfactory/matmul"
)

// Profile runs one pool multiply of two random size×size matrices under the
// CPU profiler and compares it against the sequential triple loop. It will be
// outputted as matmul_{date}_s{size}_w{workers}.prof.
//
// use pprof to read the file (go install github.com/google/pprof@latest).
func Profile(size, workers int) {
	// Profile file
	f, err := os.Create(fmt.Sprintf("matmul_%s_s%d_w%d.prof",
		strings.ReplaceAll(time.Now().Truncate(time.Second).Format(time.DateTime), " ", "-"),
		size,
		workers))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Operands
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	a := matmul.Random(size, rng)
	b := matmul.Random(size, rng)

	// Start profiling
	func() {
		_ = pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()

		start := time.Now()
		if _, err := matmul.MultiplyWorkers(a, b, workers); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("(par: %s)\n", time.Since(start))
	}()

	// Sequential equivalent, for comparison
	start := time.Now()
	c := make([][]float64, size)
	for i := range c {
		c[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			for k := 0; k < size; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	fmt.Printf("(seq: %s)\n", time.Since(start))
	fmt.Printf("profile:%s\n", f.Name())

	// Call pprof on a file
	// pprof -http=:8080 $file
}
