package partition_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tiger/partition"
)

// benchmarkBuild builds a table of chars characters over n taxa with k states each.
func benchmarkBuild(b *testing.B, chars, n, k int) {
	taxa := make([]string, n)
	for i := range taxa {
		taxa[i] = fmt.Sprintf("t%d", i)
	}
	obs := make(partition.Observations, chars)
	for c := 0; c < chars; c++ {
		cells := make(map[string][]string, n)
		for i, taxon := range taxa {
			cells[taxon] = []string{fmt.Sprintf("s%d", (i*(c+1))%k)}
		}
		obs[fmt.Sprintf("c%d", c)] = cells
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Build(obs, taxa); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

func BenchmarkBuild_Small(b *testing.B)  { benchmarkBuild(b, 50, 20, 4) }
func BenchmarkBuild_Medium(b *testing.B) { benchmarkBuild(b, 200, 100, 10) }
