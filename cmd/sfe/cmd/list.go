package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/sfe/pkg/core/version"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List functions, parameters and aliases",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	defs := app.registry.Definitions()

	width := 0
	for _, def := range defs {
		width = max(width, lipgloss.Width(def.Name))
	}
	name := nameStyle.Width(width + 2)
	indent := strings.Repeat(" ", width+2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Escaped string functions"))
	b.WriteString("\n")

	for _, def := range defs {
		params := strings.TrimPrefix(def.Usage(), def.Name+" ")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, name.Render(def.Name), params))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s%s\n", indent, mutedStyle.Render(def.Description+" -> "+def.Returns))
		if aliases := app.registry.AliasesOf(def.Name); len(aliases) > 0 {
			fmt.Fprintf(&b, "%s%s\n", indent, aliasStyle.Render("aliases: "+strings.Join(aliases, ", ")))
		}
	}

	lim := app.registry.Limits()
	credits := version.FunctionSetCredits()
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"limits: needle %s, pad %s, result %s\n%s %s by %s (%s)",
		bound(lim.MaxNeedleLength), bound(lim.MaxPadLength), bound(lim.MaxResultLength),
		credits.Name, credits.Version, credits.Author, credits.License,
	)))
	b.WriteString("\n")

	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func bound(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%d", n)
}
