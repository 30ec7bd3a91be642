package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/sfe/foundation/core/error"
	"github.com/msto63/sfe/internal/parserfunc"
)

var batchFailuresOnly bool

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Evaluate a YAML batch of invocations",
	Long: `Evaluates every invocation of a YAML batch file in order and
compares the output with the optional expectation. Use - to read
the batch from stdin. Exits non-zero when an item fails.

Batch format:
  - name: centered title
    fn: pad_e
    args: [Title, 11, '-', center]
    expect: "---Title---"`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVar(&batchFailuresOnly, "failures", false, "only print failed items")
}

func runBatch(cmd *cobra.Command, args []string) error {
	var reader io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			code := mdwerror.CodeInvalidInput
			if os.IsNotExist(err) {
				code = mdwerror.CodeNotFound
			}
			return mdwerror.Wrap(err, "failed to open batch file").
				WithCode(code).
				WithDetail("path", args[0])
		}
		defer f.Close()
		reader = f
	}

	items, err := parserfunc.DecodeBatch(reader)
	if err != nil {
		return err
	}

	report := app.registry.RunBatch(items)
	out := cmd.OutOrStdout()

	for _, res := range report.Results {
		if batchFailuresOnly && res.Passed {
			continue
		}
		fmt.Fprintln(out, formatResult(res))
	}

	summary := fmt.Sprintf("%d items, %d failed", len(report.Results), report.Failed)
	if !report.OK() {
		fmt.Fprintln(out, failStyle.Render(summary))
		return mdwerror.Newf("%d of %d batch items failed", report.Failed, len(report.Results)).
			WithCode(mdwerror.CodeValidationFailed)
	}
	fmt.Fprintln(out, passStyle.Render(summary))
	return nil
}

func formatResult(res parserfunc.BatchResult) string {
	label := res.Item.Label()

	switch {
	case res.Err != nil:
		return fmt.Sprintf("%s %s: %v", failStyle.Render("FAIL"), label, res.Err)
	case !res.Passed:
		return fmt.Sprintf("%s %s: got %q, want %q", failStyle.Render("FAIL"), label, res.Output, *res.Item.Expect)
	case res.Checked:
		return fmt.Sprintf("%s %s: %q", passStyle.Render("PASS"), label, res.Output)
	default:
		return fmt.Sprintf("%s %s: %q", mutedStyle.Render(" -- "), label, res.Output)
	}
}
