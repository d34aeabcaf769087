package rates_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tiger/agreement"
	"github.com/katalvlaran/tiger/partition"
	"github.com/katalvlaran/tiger/rates"
)

// benchTable builds a table of chars characters over n taxa with k states each.
func benchTable(b *testing.B, chars, n, k int) *partition.Table {
	b.Helper()
	taxa := make([]string, n)
	for i := range taxa {
		taxa[i] = fmt.Sprintf("t%d", i)
	}
	obs := make(partition.Observations, chars)
	for c := 0; c < chars; c++ {
		cells := make(map[string][]string, n)
		for i, taxon := range taxa {
			cells[taxon] = []string{fmt.Sprintf("s%d", (i*(c+3)+c)%k)}
		}
		obs[fmt.Sprintf("c%d", c)] = cells
	}
	tbl, err := partition.Build(obs, taxa)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}

	return tbl
}

func benchmarkCompute(b *testing.B, opts ...rates.Option) {
	tbl := benchTable(b, 200, 40, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rates.Compute(tbl, opts...); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

func BenchmarkCompute_Standard(b *testing.B) { benchmarkCompute(b) }

func BenchmarkCompute_StandardParallel(b *testing.B) { benchmarkCompute(b, rates.WithWorkers(8)) }

func BenchmarkCompute_Corrected(b *testing.B) {
	c, err := agreement.NewCorrected()
	if err != nil {
		b.Fatal(err)
	}
	benchmarkCompute(b, rates.WithScorer(c))
}
