package main

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"legacy-bridge/internal/analyze"
	"legacy-bridge/internal/diagnostic"
	"legacy-bridge/structtag"
)

var errCheckFailed = errors.New("check failed")

var checkFlags struct {
	dir    string
	tagKey string
	mixins []string
	format string
	strict bool
}

var checkCmd = &cobra.Command{
	Use:          "check [packages]",
	Short:        "Validate legacy tags in packages (default ./...)",
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	f := checkCmd.Flags()
	f.StringVarP(&checkFlags.dir, "dir", "C", "", "Directory to resolve package patterns in")
	f.StringVar(&checkFlags.tagKey, "tag-key", structtag.DefaultTagKey, "Struct tag key holding legacy tags")
	f.StringSliceVar(&checkFlags.mixins, "mixins", nil, "YAML mix-in file to validate against the packages (repeatable)")
	f.StringVar(&checkFlags.format, "format", "text", "Output format: text or json")
	f.BoolVar(&checkFlags.strict, "strict", false, "Fail on warnings too")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkFlags.format != "text" && checkFlags.format != "json" {
		return fmt.Errorf("unknown format %q", checkFlags.format)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	graph, err := analyze.NewAnalyzer(checkFlags.dir, logger).LoadPackages(patterns...)
	if err != nil {
		return err
	}

	checker := analyze.NewChecker(checkFlags.tagKey, logger)
	diags := checker.Check(graph)

	for _, file := range checkFlags.mixins {
		m, err := structtag.LoadMixins(file)
		if err != nil {
			diags.AddError(diagnostic.At("", "", token.Position{Filename: file}), diagnostic.CodeInvalidValue, err.Error())
			continue
		}

		diags.Merge(checker.CheckMixins(graph, m, file))
	}

	if err := report(cmd, diags); err != nil {
		return err
	}

	if diags.HasErrors() || (checkFlags.strict && diags.HasWarnings()) {
		return fmt.Errorf("%w: %d errors, %d warnings", errCheckFailed, len(diags.Errors), len(diags.Warnings))
	}

	return nil
}

func report(cmd *cobra.Command, diags diagnostic.Diagnostics) error {
	out := cmd.OutOrStdout()

	if checkFlags.format == "json" {
		data, err := json.MarshalIndent(diags, "", "  ")
		if err != nil {
			return fmt.Errorf("encode diagnostics: %w", err)
		}

		fmt.Fprintln(out, string(data))

		return nil
	}

	for _, d := range diags.All() {
		fmt.Fprintln(out, d.String())
	}

	return nil
}
