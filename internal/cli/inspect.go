package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/necklace/pkg/layout"
	"github.com/matzehuels/necklace/pkg/report"
)

// inspectCommand creates the inspect command, which summarizes a report
// without drawing anything.
func (c *CLI) inspectCommand() *cobra.Command {
	var dir, input string

	cmd := &cobra.Command{
		Use:   "inspect <cycleSize> <connectingVertices>",
		Short: "Summarize a search report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			path := input
			if path == "" {
				if dir == "" {
					cfgPath, _ := cmd.Flags().GetString("config")
					cfg, err := loadConfig(cfgPath)
					if err != nil {
						return err
					}
					dir = cfg.Report.Dir
				}
				path = filepath.Join(dir, report.Filename(params.CycleSize, params.Connecting))
			}

			loggerFromContext(cmd.Context()).Debug("inspecting report", "path", path)
			s, err := report.OpenAll(path)
			if err != nil {
				return err
			}
			printSummary(c.Out, path, params, s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "directory containing the report (default from config, else .)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "report file, overriding output_<cycleSize>_<connectingVertices>.txt")
	return cmd
}

func printSummary(w io.Writer, path string, p layout.Params, s *report.Summary) {
	fmt.Fprintln(w, StyleTitle.Render(path))

	if s.Header.HasParams {
		printKeyValue(w, "Graph", fmt.Sprintf("cycle size %d, connecting vertices %d", s.Header.CycleSize, s.Header.Connecting))
	} else {
		printKeyValue(w, "Graph", s.Header.Params)
	}
	if s.Header.HasElapsed {
		printKeyValue(w, "Time", s.Header.Elapsed.String())
	}

	vertices := s.Matrix.Size()
	printKeyValue(w, "Matrix", fmt.Sprintf("%d vertices, %d edges", vertices, s.Matrix.EdgeCount()))
	outLo, outHi := s.Matrix.DegreeRange(s.Matrix.OutDegree)
	inLo, inHi := s.Matrix.DegreeRange(s.Matrix.InDegree)
	printKeyValue(w, "Degree", fmt.Sprintf("out %s, in %s", span(outLo, outHi), span(inLo, inHi)))
	printKeyValue(w, "Labels", fmt.Sprintf("%d per record", vertices+s.Matrix.EdgeCount()))
	printKeyValue(w, "Records", StyleNumber.Render(fmt.Sprint(len(s.Records))))
	if lo, hi, ok := s.MagicRange(); ok {
		printKeyValue(w, "Magic", span(lo, hi))
	}

	if want := p.Vertices(); want != vertices {
		printWarning(w, "layout places %d vertices but the matrix has %d", want, vertices)
	}
}

// span formats an inclusive integer range, collapsing it when lo == hi.
func span(lo, hi int) string {
	if lo == hi {
		return fmt.Sprint(lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}
