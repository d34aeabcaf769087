package patterns

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/katalvlaran/tiger/partition"
)

type fixtureFile struct {
	Taxa     []string                       `json:"taxa"`
	Patterns map[string]map[string][]string `json:"patterns"`
	Results  []float64                      `json:"results"`
}

// ReadFixture reads a JSON reference data set. Unknown keys are ignored.
// Characters are ordered numerically when every name is an integer and
// lexically otherwise.
func ReadFixture(r io.Reader) (*Dataset, error) {
	var f fixtureFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(f.Taxa) == 0 {
		return nil, fmt.Errorf("%w: fixture has no taxa", ErrMalformed)
	}

	return &Dataset{
		Taxa:         f.Taxa,
		Characters:   characterOrder(slices.Collect(maps.Keys(f.Patterns))),
		Observations: partition.Observations(f.Patterns),
		Expected:     f.Results,
	}, nil
}

func characterOrder(chars []string) []string {
	nums := make(map[string]int, len(chars))
	for _, c := range chars {
		n, err := strconv.Atoi(c)
		if err != nil {
			slices.Sort(chars)
			return chars
		}
		nums[c] = n
	}
	slices.SortFunc(chars, func(a, b string) int { return nums[a] - nums[b] })

	return chars
}
