package agreement_test

import (
	"fmt"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/partition"
)

// ExamplePartitionScore scores Y's groups against X's groups.
func ExamplePartitionScore() {
	x := partition.MustPartition([]string{"a", "c", "d"}, []string{"b"}, []string{"e"})
	y := partition.MustPartition([]string{"a", "b"}, []string{"c", "d"}, []string{"e"})

	fmt.Printf("%.2f\n", agreement.PartitionScore(x, y))
	// Output: 0.67
}

// ExampleCorrectedScore ignores the singleton {e} that inflates the standard score.
func ExampleCorrectedScore() {
	x := partition.MustPartition([]string{"a", "c", "d"}, []string{"b"}, []string{"e"})
	y := partition.MustPartition([]string{"a", "b"}, []string{"c", "d"}, []string{"e"})
	a := partition.MustPartition([]string{"a", "b", "c", "d", "e"})

	s, _ := agreement.CorrectedScore(x, y)
	fmt.Println(s)

	s, _ = agreement.CorrectedScore(x, a)
	fmt.Println(s)
	// Output:
	// 0.50
	// n/a
}
