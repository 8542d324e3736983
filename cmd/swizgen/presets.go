package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-swizgen/pkg/preset"
)

func newPresetsCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available presets",
		Long: fmt.Sprintf(`List the presets usable with --preset.

User presets are read from %s and shadow built-in presets of the same name.`, preset.SearchDir()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, builtin, err := e.resolver.Names()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			shadowed := make(map[string]struct{}, len(user))
			for _, name := range user {
				shadowed[name] = struct{}{}
				fmt.Fprintf(out, "%s\t(user)\n", name)
			}
			for _, name := range builtin {
				if _, ok := shadowed[name]; ok {
					continue
				}
				p, err := e.resolver.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t(built-in) %s\n", name, p.Description)
			}
			return nil
		},
	}
}
