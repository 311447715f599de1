package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordanh/pulsecheck/internal/taxonomy"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the business archetypes and their canonical profiles",
	RunE:  runArchetypes,
}

func init() {
	rootCmd.AddCommand(archetypesCmd)
}

func runArchetypes(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, a := range taxonomy.Archetypes() {
		p := taxonomy.ProfileFor(a)
		fmt.Fprintf(out, "%s (%s)\n", p.DisplayName, a)
		fmt.Fprintln(out, "  Signals:")
		for _, s := range p.Signals {
			fmt.Fprintf(out, "    - %s\n", s)
		}
		fmt.Fprintln(out, "  Costs:")
		for _, c := range p.Costs {
			fmt.Fprintf(out, "    - %s\n", c)
		}
		fmt.Fprintln(out, "  First fixes:")
		for _, f := range p.Fixes {
			fmt.Fprintf(out, "    - %s\n", f)
		}
		fmt.Fprintln(out)
	}
	return nil
}
