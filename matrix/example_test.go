package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/echelon/matrix"
)

// ExampleReducer_Reduce solves x + y = 3, x - y = 1 and prints every step.
func ExampleReducer_Reduce() {
	m, _ := matrix.NewDenseFrom(2, 3, []float64{1, 1, 3, 1, -1, 1})
	m.SetAugmented(true)

	rec := &matrix.Recorder{}
	st, _ := matrix.NewReducer(matrix.WithTracer(rec)).Reduce(m, matrix.FormRREF)
	for _, line := range rec.Lines() {
		fmt.Println(line)
	}
	fmt.Println("pivots:", st.Count)
	fmt.Print(m)
	// Output:
	// r2 -> r2 + r1 * -1.00
	// r2 -> r2 * -0.50
	// r1 -> r1 + r2 * -1.00
	// pivots: 2
	// [1, 0 | 2]
	// [0, 1 | 1]
}

// ExampleFprint shows the fixed-width console rendering.
func ExampleFprint() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{1, 1, 1, 1})
	sum, _ := matrix.Add(a, b)
	_ = matrix.Fprint(os.Stdout, sum)
	// Output:
	//     2.00    3.00
	//     4.00    5.00
}
