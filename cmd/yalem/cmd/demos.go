package cmd

import (
	"fmt"

	"github.com/yalem-ui/yalem/cmd/yalem/internal/demos"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demos",
		Short: "List available demos",
		Long:  `List the demos that render and ops accept.`,
		Usage: "yalem demos",
		Run:   runDemos,
	})
}

func runDemos(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	for _, d := range demos.All() {
		fmt.Fprintf(stdout, "  %-14s %s\n", d.Name, d.Short)
	}
	return nil
}
