package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/adr/pkg/link"
)

func newLinkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "link <source-id> <ID[:COMMENT[:REVERSE_COMMENT]]>",
		Short:   "Link an existing record to another",
		Example: `  adr link 5 "2:Amends:Amended by"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid source id %q", args[0])
			}
			spec, err := link.Parse(args[1])
			if err != nil {
				return err
			}

			svc, err := g.service()
			if err != nil {
				return err
			}
			if err := svc.Link(cmd.Context(), source, spec); err != nil {
				return fmt.Errorf("failed to link: %w", err)
			}

			if target, ok := spec.TargetID(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Linked %s -> %s\n", svc.FileName(source), svc.FileName(target))
			}
			return nil
		},
	}
}
