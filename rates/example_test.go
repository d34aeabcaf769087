package rates_test

import (
	"fmt"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/partition"
	"github.com/katalvlaran/tiger/rates"
)

// ExampleCompute computes TIGER and corrected TIGER rates for a small table.
func ExampleCompute() {
	obs := partition.Observations{
		"X": {"a": {"A"}, "b": {"B"}, "c": {"A"}, "d": {"A"}, "e": {"C"}},
		"Y": {"a": {"D"}, "b": {"D"}, "c": {"E"}, "d": {"E"}, "e": {"F"}},
		"A": {"a": {"H"}, "b": {"H"}, "c": {"H"}, "d": {"H"}, "e": {"H"}},
	}
	tbl, err := partition.Build(obs, []string{"a", "b", "c", "d", "e"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tiger, _ := rates.Compute(tbl)
	fmt.Printf("TIGER   X=%.2f Y=%.2f A=%.2f\n", tiger["X"], tiger["Y"], tiger["A"])

	corrected, _ := agreement.NewCorrected()
	ctiger, _ := rates.Compute(tbl, rates.WithScorer(corrected))
	_, hasA := ctiger["A"]
	fmt.Printf("C-TIGER X=%.2f Y=%.2f A rated: %v\n", ctiger["X"], ctiger["Y"], hasA)
	// Output:
	// TIGER   X=0.33 Y=0.33 A=1.00
	// C-TIGER X=0.50 Y=0.00 A rated: false
}

// ExampleSummarize reduces a rate table to mean and standard deviation.
func ExampleSummarize() {
	s := rates.Summarize(map[string]float64{"X": 0.25, "Y": 0, "Z": 0.25})
	fmt.Printf("n=%d %.2f ± %.2f\n", s.Count, s.Mean, s.StdDev)
	// Output: n=3 0.17 ± 0.14
}
