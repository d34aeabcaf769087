package patterns_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tiger/patterns"
)

func ExampleReadMatrix() {
	in := `Taxon,hand,foot
a,1,3
b,1,4
c,2,?
`
	ds, err := patterns.ReadMatrix(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	tbl, _ := ds.Build()
	for _, char := range ds.Characters {
		p, _ := tbl.Partition(char)
		fmt.Printf("%s: %s\n", char, p)
	}
	// Output:
	// hand: {a,b} {c}
	// foot: {a} {b}
}

func ExampleReadWordlist() {
	in := "DOCULECT\tCONCEPT\tFORM\tCOGID\n" +
		"a\thand\tman\t1\n" +
		"b\thand\tmano\t1\n" +
		"b\thand\tkai\t2\n"
	ds, err := patterns.ReadWordlist(strings.NewReader(in), patterns.WithComma('\t'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ds.Taxa, ds.Observations["hand"]["b"])
	// Output:
	// [a b] [1 2]
}
