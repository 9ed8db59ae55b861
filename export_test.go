package matmul

// MultiplyEmit exposes the internal multiply so tests can drive the per-cell
// emit hook, including its failure path.
var MultiplyEmit = multiply

// CellPositions exposes the task enumeration so tests can check coverage of
// the output grid.
func CellPositions(a, b Matrix) ([][2]int, error) {
	tasks, err := cellTasks(a, b)
	if err != nil {
		return nil, err
	}
	positions := make([][2]int, len(tasks))
	for i, task := range tasks {
		positions[i] = [2]int{task.row, task.col}
	}
	return positions, nil
}
