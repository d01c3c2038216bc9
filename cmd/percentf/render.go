package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	percentf "github.com/itsatony/go-percentf"
)

var (
	renderFile     string
	renderCodes    string
	renderSet      []string
	renderMarker   string
	renderFallback string
)

var renderCmd = &cobra.Command{
	Use:   "render [format]",
	Short: "Render a format string against a table of codes",
	Long: `Render a format string against a table of fixed conversion codes.

The format is taken from the argument or from --file. Codes come from a YAML
mapping file (--codes) and/or repeated --set code=value flags:

  percentf render --set a=apples --set b=bananas "I like %a and %b."`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read the format string from a file")
	renderCmd.Flags().StringVarP(&renderCodes, "codes", "c", "", "YAML file mapping conversion codes to replacements")
	renderCmd.Flags().StringArrayVarP(&renderSet, "set", "s", nil, "set a conversion code (code=value, repeatable)")
	renderCmd.Flags().StringVarP(&renderMarker, "marker", "m", "%", "placeholder escape character")
	renderCmd.Flags().StringVar(&renderFallback, "fallback", "literal", "unresolved placeholder policy: literal or error")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(args)
	if err != nil {
		return err
	}

	codes := map[string]any{}
	if renderCodes != "" {
		data, err := os.ReadFile(renderCodes)
		if err != nil {
			return err
		}
		fixed := map[string]string{}
		if err := yaml.Unmarshal(data, &fixed); err != nil {
			return err
		}
		for code, value := range fixed {
			codes[code] = value
		}
	}
	for _, kv := range renderSet {
		code, value, found := strings.Cut(kv, "=")
		if !found || code == "" {
			return fmt.Errorf("invalid --set value %q, expected code=value", kv)
		}
		codes[code] = value
	}

	opts, err := formatterOptions(codes)
	if err != nil {
		return err
	}
	f, err := percentf.New(opts...)
	if err != nil {
		return err
	}

	out, err := f.Format(format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// resolveFormat picks the format string from the positional argument or the
// --file flag.
func resolveFormat(args []string) (string, error) {
	if len(args) == 1 && renderFile != "" {
		return "", errors.New("pass a format argument or --file, not both")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if renderFile == "" {
		return "", errors.New("a format argument or --file is required")
	}
	data, err := os.ReadFile(renderFile)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// formatterOptions translates CLI flags into formatter options.
func formatterOptions(codes map[string]any) ([]percentf.Option, error) {
	if len(renderMarker) != 1 {
		return nil, fmt.Errorf("marker must be a single character, got %q", renderMarker)
	}

	opts := []percentf.Option{
		percentf.WithMarker(renderMarker[0]),
		percentf.WithConversions(codes),
		percentf.WithInputProcessor(percentf.ForbidProcessor{}),
	}
	switch renderFallback {
	case "literal":
		opts = append(opts, percentf.WithFallback(percentf.FallbackLiteral))
	case "error":
		opts = append(opts, percentf.WithFallback(percentf.FallbackError))
	default:
		return nil, fmt.Errorf("unknown fallback policy %q, expected literal or error", renderFallback)
	}
	return opts, nil
}
