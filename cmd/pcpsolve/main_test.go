package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pcpsearch/pcp"
)

// run executes the CLI with args and returns stdout and the error.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_InlinePairsText(t *testing.T) {
	out, err := run(t, "", "solve", "--pairs", "(a,ab), (ba,a), (aba,b)")
	require.NoError(t, err)

	assert.Contains(t, out, "Outcome: solved")
	assert.Contains(t, out, "Sequence: [0 1]")
	assert.Contains(t, out, "(ba, a)")
	assert.Contains(t, out, "Stats: nodes=3")
}

func TestSolve_JSONFileJSONOutput(t *testing.T) {
	path := writeFile(t, "inst.json", `{"pairs":[{"top":"1","bottom":"101"},{"top":"10","bottom":"00"},{"top":"011","bottom":"11"}]}`)

	out, err := run(t, "", "solve", "-f", path, "--format", "json")
	require.NoError(t, err)

	var res pcp.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.HasSolution)
	assert.Equal(t, []int{0, 2, 1, 2}, res.Sequence)
	assert.Equal(t, "101110011", res.TopResult)
	require.NotNil(t, res.Stats)
	assert.False(t, res.Error)
}

func TestSolve_YAMLFile(t *testing.T) {
	path := writeFile(t, "inst.yaml", "- top: a\n  bottom: ab\n- top: b\n  bottom: a\n")

	out, err := run(t, "", "solve", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome: exhausted")
	assert.Contains(t, out, "undecidable")
}

func TestSolve_Stdin(t *testing.T) {
	out, err := run(t, `[{"top":"ab","bottom":"ab"}]`, "solve", "-f", "-", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"hasSolution": true`)
}

func TestSolve_RejectedInstanceFails(t *testing.T) {
	out, err := run(t, `[{"top":"ba"}]`, "solve", "-f", "-")
	assert.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "Outcome: invalid")
	assert.Contains(t, out, "pair 1")
}

func TestSolve_FlagOverrides(t *testing.T) {
	out, err := run(t, "", "solve", "-p", "(a,aa) (aa,a)", "--max-depth", "3", "--format", "json")
	require.NoError(t, err)

	var res pcp.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []int{0, 1}, res.Sequence)
	assert.Equal(t, 3, res.Stats.MaxDepthReached)
}

func TestSolve_InputErrors(t *testing.T) {
	_, err := run(t, "", "solve")
	assert.ErrorContains(t, err, "required")

	_, err = run(t, "", "solve", "-p", "(a,b)", "-f", "x.json")
	assert.ErrorContains(t, err, "not both")

	_, err = run(t, "", "solve", "-p", "no pairs here")
	assert.ErrorIs(t, err, pcp.ErrNoPairs)

	_, err = run(t, "", "solve", "-p", "(a,b)", "--timeout", "soon")
	assert.Error(t, err)
}

func TestSolve_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "pcpsolve.yaml", "output:\n  format: json\nlog:\n  level: debug\n  format: json\n")

	out, err := run(t, "", "--config", cfgPath, "solve", "-p", "(ab,ab)")
	require.NoError(t, err)
	assert.Contains(t, out, `"outcome": "solved"`)
}

func TestBatch_MixedFiles(t *testing.T) {
	good := writeFile(t, "good.json", `[{"top":"a","bottom":"a"}]`)
	none := writeFile(t, "none.yaml", "pairs:\n  - top: a\n    bottom: ab\n  - top: b\n    bottom: a\n")

	out, err := run(t, "", "batch", good, none, "--parallel", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "== "+good)
	assert.Contains(t, out, "Outcome: solved")
	assert.Contains(t, out, "Outcome: exhausted")
}

func TestBatch_RejectedCounted(t *testing.T) {
	bad := writeFile(t, "bad.json", `[]`)
	good := writeFile(t, "good.json", `[{"top":"a","bottom":"a"}]`)

	out, err := run(t, "", "batch", bad, good, "--format", "json")
	assert.ErrorIs(t, err, errRejected)

	var rs []namedResult
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs, 2)
	assert.True(t, rs[0].Result.Error)
	assert.True(t, rs[1].Result.HasSolution)
}

func TestExamples_ListAndSolve(t *testing.T) {
	out, err := run(t, "", "examples")
	require.NoError(t, err)
	for _, ex := range pcp.Examples() {
		assert.Contains(t, out, ex.Name)
	}

	out, err = run(t, "", "examples", "--solve", "--format", "json")
	require.NoError(t, err)

	var rs []namedResult
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	require.Len(t, rs, len(pcp.Examples()))
	assert.Equal(t, []int{0, 1}, rs[0].Result.Sequence)
	assert.Equal(t, pcp.OutcomeExhausted, rs[1].Result.Outcome)
	assert.Equal(t, []int{0, 2, 1, 2}, rs[2].Result.Sequence)
}
