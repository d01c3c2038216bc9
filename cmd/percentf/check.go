package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	percentf "github.com/itsatony/go-percentf"
)

var (
	checkMarker string
	checkStrict bool
)

var checkCmd = &cobra.Command{
	Use:   "check <format>",
	Short: "Tokenize a format string and report its hunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkMarker, "marker", "m", "%", "placeholder escape character")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail on unparseable placeholder sequences")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(checkMarker) != 1 {
		return errors.New("marker must be a single character")
	}

	var hunker percentf.Hunker
	if checkStrict {
		hunker = percentf.NewStrictHunker(checkMarker[0], nil)
	} else {
		hunker = percentf.NewDefaultHunker(checkMarker[0], nil)
	}

	hunks, err := hunker.Hunks(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, h := range hunks {
		if h.Kind == percentf.HunkLiteral {
			fmt.Fprintf(out, "%3d  literal      %q\n", i, h.Text)
			continue
		}
		fmt.Fprintf(out, "%3d  placeholder  marker=%s", i, h.Marker)
		if h.LeftAlign {
			fmt.Fprint(out, " left-align")
		}
		if h.MinWidth != percentf.WidthUnset {
			fmt.Fprintf(out, " min=%d", h.MinWidth)
		}
		if h.MaxWidth != percentf.WidthUnset {
			fmt.Fprintf(out, " max=%d", h.MaxWidth)
		}
		if h.HasBraceArg {
			fmt.Fprintf(out, " arg=%q", h.BraceArg)
		}
		fmt.Fprintf(out, " at=%d\n", h.Offset)
	}
	return nil
}
