package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ivlev/motiongfx/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSCROLL\tORDER\tDESCRIPTION")
		for _, name := range templates.Names() {
			t, err := templates.Get(name)
			if err != nil {
				return err
			}
			scroll := "-"
			if t.HasScroll() {
				scroll = fmt.Sprintf("%.2fs", t.GetDefaultScroll())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, scroll, t.GetDefaultOrder(), t.GetDescription())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
