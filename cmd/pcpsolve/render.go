package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/pcpsearch/pcp"
)

// namedResult labels a result with its source (file or example name).
type namedResult struct {
	Name   string     `json:"name"`
	Result pcp.Result `json:"result"`
}

// render writes one result as text or indented JSON.
func render(w io.Writer, format string, res pcp.Result) error {
	if format == "json" {
		return writeJSON(w, res)
	}
	writeText(w, res)

	return nil
}

// renderNamed writes several results; JSON output is a single array.
func renderNamed(w io.Writer, format string, rs []namedResult) error {
	if format == "json" {
		return writeJSON(w, rs)
	}
	for i, r := range rs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s\n", r.Name)
		writeText(w, r.Result)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeText(w io.Writer, res pcp.Result) {
	fmt.Fprintf(w, "Outcome: %s\n", res.Outcome)
	fmt.Fprintln(w, res.Message)
	if res.HasSolution {
		fmt.Fprintf(w, "Sequence: %v\n", res.Sequence)
		fmt.Fprintf(w, "Top:      %s\n", res.TopResult)
		fmt.Fprintf(w, "Bottom:   %s\n", res.BottomResult)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STEP\tPAIR\tINDEX\tTOP\tBOTTOM\tMATCH")
		for _, s := range res.Steps {
			match := ""
			if s.Match {
				match = "yes"
			}
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
				s.Step, s.Pair, s.PairIndex, s.TopAccumulated, s.BottomAccumulated, match)
		}
		_ = tw.Flush()
	}
	if st := res.Stats; st != nil {
		fmt.Fprintf(w, "Stats: nodes=%d pruned=%d (depth=%d divergence=%d revisit=%d prefix=%d) max_depth=%d time=%dms\n",
			st.NodesExplored, st.BranchesPruned,
			st.PrunedBy.Depth, st.PrunedBy.Divergence, st.PrunedBy.Revisit, st.PrunedBy.Prefix,
			st.MaxDepthReached, st.TimeMs)
	}
}
