/*
matmul multiplies dense matrices with a bounded pool of goroutines.

The decomposition is per output cell: every (i, j) position of the product is
an independent task computing sum over k of A[i][k]*B[k][j], and the tasks are
spread over an ants goroutine pool sized to the CPU count (or an explicit
override). Summation order inside a cell is fixed (k ascending), so the result
is bit-for-bit the same as the sequential triple loop regardless of how many
workers run or how they are scheduled.

Three ways to use it:

- Multiply / MultiplyWorkers: one-shot parallel product of two matrices.
- MultiplyLogged / MultiplyLoggedWorkers: same, but every computed cell is also
  appended to a CellLog, a shared append-only file serialized by a mutex so
  lines never interleave mid-line.
- RunStream: a small pipeline where two generators stream random square
  matrices into channels, a multiplier actor pairs and multiplies them, and a
  drain loop counts finished products. Channel close is the end-of-stream
  signal throughout.

There is no cancellation and no retry: a multiply either returns the complete
product or an error, and a stalled pipeline actor stalls the pipeline. Pool
sizing is the only tuning knob; cell tasks are pure CPU, so sizing beyond the
core count buys nothing.
*/

package matmul
