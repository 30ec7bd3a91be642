package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var callNoNewline bool

var callCmd = &cobra.Command{
	Use:   "call <function> [args...]",
	Short: "Evaluate one function",
	Long: `Evaluates a single function with positional arguments. Missing
arguments take their defaults; integer arguments are coerced.

Use -- before the arguments when one of them starts with a dash.

Examples:
  sfe call pos_e "hello world" o 5          # 7
  sfe call pad_e Title 11 - center          # ---Title---
  sfe call explode_e -- a,b,c , -1          # c
  sfe call replace_e "a;b" ";" '\n'         # a<newline>b`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().BoolVarP(&callNoNewline, "no-newline", "n", false, "do not print a trailing newline")
}

func runCall(cmd *cobra.Command, args []string) error {
	result, err := app.registry.Invoke(args[0], args[1:])
	if err != nil {
		return err
	}

	if callNoNewline {
		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
