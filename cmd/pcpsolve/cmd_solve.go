package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pcpsearch/pcp"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file   string
		text   string
		search searchFlags
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search one PCP instance",
		Long: "Search one PCP instance given as a JSON/YAML file (bare list of {top, bottom}\n" +
			"records or {pairs: [...]}), as '-' for JSON on stdin, or inline with --pairs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := search.apply(cmd, a.cfg)
			if err != nil {
				return err
			}

			var in any
			switch {
			case file != "" && text != "":
				return errors.New("use either --file or --pairs, not both")
			case text != "":
				if in, err = pcp.ParsePairs(text); err != nil {
					return fmt.Errorf("--pairs: %w", err)
				}
			case file != "":
				if in, err = readInstance(file, cmd.InOrStdin()); err != nil {
					return err
				}
			default:
				return errors.New("one of --file or --pairs is required")
			}

			opts := append(cfg.SearchOptions(), pcp.WithLogger(a.log), pcp.WithContext(cmd.Context()))
			res := pcp.SolveWithOptions(in, opts...)
			if err = render(cmd.OutOrStdout(), cfg.Output.Format, res); err != nil {
				return err
			}
			if res.Invalid() {
				return errRejected
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "Instance file (.json, .yaml, .yml) or - for JSON on stdin")
	f.StringVarP(&text, "pairs", "p", "", `Inline pairs, e.g. "(a,ab), (ba,a)"`)
	search.register(cmd)

	return cmd
}

// readInstance loads and decodes an instance file; the extension selects
// YAML (.yaml, .yml) or JSON (anything else).
func readInstance(path string, stdin io.Reader) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return pcp.DecodeYAML(data)
	default:
		return pcp.DecodeJSON(data)
	}
}
