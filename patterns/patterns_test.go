package patterns_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiger/patterns"
)

const matrixCSV = `Taxon,X,Y,Z
# comment lines are skipped
a,A,D,G
b,B,D,H
c,A,E|F,H
d,A,?,H
e,C,-,
`

func TestReadMatrix(t *testing.T) {
	ds, err := patterns.ReadMatrix(strings.NewReader(matrixCSV), patterns.WithSeparator("|"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ds.Taxa)
	assert.Equal(t, []string{"X", "Y", "Z"}, ds.Characters)
	assert.Equal(t, []string{"A"}, ds.Observations["X"]["a"])
	assert.Equal(t, []string{"E", "F"}, ds.Observations["Y"]["c"], "separator splits states")
	assert.Empty(t, ds.Observations["Y"]["d"], "? is missing")
	assert.Empty(t, ds.Observations["Y"]["e"], "- is missing")
	assert.Empty(t, ds.Observations["Z"]["e"], "empty cell is missing")

	tbl, err := ds.Build()
	require.NoError(t, err)
	y, _ := tbl.Partition("Y")
	assert.Equal(t, "{a,b} {c}", y.String())
}

func TestReadMatrix_NoSeparator(t *testing.T) {
	ds, err := patterns.ReadMatrix(strings.NewReader(matrixCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"E|F"}, ds.Observations["Y"]["c"], "without a separator the cell is one state")
}

func TestReadMatrix_TSVAndMissingMarkers(t *testing.T) {
	in := "Taxon\t1\t2\na\tA\tNA\nb\tB\tB\n"
	ds, err := patterns.ReadMatrix(strings.NewReader(in), patterns.WithComma('\t'), patterns.WithMissing("NA"))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, ds.Characters)
	assert.Empty(t, ds.Observations["2"]["a"])
	assert.Equal(t, []string{"B"}, ds.Observations["2"]["b"])
}

func TestReadMatrix_Errors(t *testing.T) {
	cases := map[string]string{
		"empty input":         "",
		"no characters":       "Taxon\na\n",
		"empty character":     "Taxon,X,\na,A,B\n",
		"duplicate character": "Taxon,X,X\na,A,B\n",
		"empty taxon":         "Taxon,X\n,A\n",
		"duplicate taxon":     "Taxon,X\na,A\na,B\n",
		"ragged row":          "Taxon,X,Y\na,A\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := patterns.ReadMatrix(strings.NewReader(in))
			assert.ErrorIs(t, err, patterns.ErrMalformed)
		})
	}
}

const wordlistTSV = "ID\tDoculect\tConcept\tForm\tCogID\n" +
	"1\ta\thand\tman\t1\n" +
	"2\tb\thand\tmano\t1\n" +
	"3\tb\thand\tkai\t2\n" +
	"4\tc\thand\tkai\t2\n" +
	"5\ta\tfoot\tpie\t3\n" +
	"6\tc\tfoot\t-\tØ\n" +
	"7\ta\thand\tmanus\t1\n"

func TestReadWordlist(t *testing.T) {
	ds, err := patterns.ReadWordlist(strings.NewReader(wordlistTSV), patterns.WithComma('\t'))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, ds.Taxa)
	assert.Equal(t, []string{"hand", "foot"}, ds.Characters)
	assert.Equal(t, []string{"1"}, ds.Observations["hand"]["a"], "repeated states collapse")
	assert.Equal(t, []string{"1", "2"}, ds.Observations["hand"]["b"], "multi-state cell")
	assert.Empty(t, ds.Observations["foot"]["c"])
	_, ok := ds.Observations["foot"]["b"]
	assert.False(t, ok, "taxa without a record have no cell")

	tbl, err := ds.Build()
	require.NoError(t, err)
	hand, _ := tbl.Partition("hand")
	assert.Equal(t, "{a,b} {b,c}", hand.String())
}

func TestReadWordlist_Columns(t *testing.T) {
	in := "lang,meaning,cog\nx,one,A\ny,one,A\n"
	ds, err := patterns.ReadWordlist(strings.NewReader(in),
		patterns.WithColumns(patterns.Columns{Taxon: "LANG", Character: "meaning", State: "cog"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ds.Taxa)
	assert.Equal(t, []string{"A"}, ds.Observations["one"]["y"])

	_, err = patterns.ReadWordlist(strings.NewReader(in))
	assert.ErrorIs(t, err, patterns.ErrMissingColumn)

	_, err = patterns.ReadWordlist(strings.NewReader("DOCULECT,CONCEPT,COGID\na,,1\n"))
	assert.ErrorIs(t, err, patterns.ErrMalformed)

	_, err = patterns.ReadWordlist(strings.NewReader("DOCULECT,CONCEPT,COGID\na,b\n"))
	assert.ErrorIs(t, err, patterns.ErrMalformed)

	_, err = patterns.ReadWordlist(strings.NewReader(""))
	assert.ErrorIs(t, err, patterns.ErrMalformed)
}

const fixtureJSON = `{
 "taxa": ["a", "b", "c"],
 "patterns": {
  "10": {"a": ["A"], "b": ["A"], "c": ["B"]},
  "2": {"a": ["A"], "b": [], "c": ["A"]},
  "1": {"a": ["X"], "b": ["Y"], "c": ["Y"]}
 },
 "results": [0.5, 0.25, 1],
 "extra": true
}`

func TestReadFixture(t *testing.T) {
	ds, err := patterns.ReadFixture(strings.NewReader(fixtureJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, ds.Taxa)
	assert.Equal(t, []string{"1", "2", "10"}, ds.Characters, "numeric names sort numerically")
	assert.Equal(t, []float64{0.5, 0.25, 1}, ds.Expected)
	assert.Equal(t, []string{"Y"}, ds.Observations["1"]["c"])

	_, err = patterns.ReadFixture(strings.NewReader("{"))
	assert.ErrorIs(t, err, patterns.ErrMalformed)
	_, err = patterns.ReadFixture(strings.NewReader(`{"patterns": {}}`))
	assert.ErrorIs(t, err, patterns.ErrMalformed)
}

func TestReadFixture_LexicalOrder(t *testing.T) {
	ds, err := patterns.ReadFixture(strings.NewReader(`{"taxa":["a"],"patterns":{"b":{},"10":{},"a":{}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "a", "b"}, ds.Characters)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	ds, err := patterns.ReadFile(write("pure_tree.csv", matrixCSV), "")
	require.NoError(t, err)
	assert.Equal(t, "pure_tree", ds.Name)
	assert.Len(t, ds.Taxa, 5)

	ds, err = patterns.ReadFile(write("m.tsv", strings.ReplaceAll(matrixCSV, ",", "\t")), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, ds.Characters)

	ds, err = patterns.ReadFile(write("wl.tsv", wordlistTSV), patterns.FormatWordlist)
	require.NoError(t, err)
	assert.Equal(t, []string{"hand", "foot"}, ds.Characters)

	ds, err = patterns.ReadFile(write("ref.json", fixtureJSON), "")
	require.NoError(t, err)
	assert.Equal(t, "ref", ds.Name)

	_, err = patterns.ReadFile(filepath.Join(dir, "missing.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = patterns.ReadFile(write("bad.csv", ""), "")
	assert.ErrorIs(t, err, patterns.ErrMalformed)

	_, err = patterns.ReadFile(write("x.csv", matrixCSV), patterns.Format("xml"))
	assert.ErrorIs(t, err, patterns.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"", "csv", "TSV", " wordlist ", "json"} {
		_, err := patterns.ParseFormat(s)
		assert.NoError(t, err, s)
	}
	f, _ := patterns.ParseFormat("TSV")
	assert.Equal(t, patterns.FormatTSV, f)

	_, err := patterns.ParseFormat("nexus")
	assert.ErrorIs(t, err, patterns.ErrUnknownFormat)

	assert.Equal(t, patterns.FormatJSON, patterns.FormatFromPath("a/b.JSON"))
	assert.Equal(t, patterns.FormatTSV, patterns.FormatFromPath("b.tab"))
	assert.Equal(t, patterns.FormatCSV, patterns.FormatFromPath("b"))
}
