package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/adr/pkg/link"
)

// Comments used by --supersede.
const (
	supersedes   = "Supersedes"
	supersededBy = "Superseded by"
)

func newNewCmd(g *globalFlags) *cobra.Command {
	var (
		links     []string
		supersede []int
	)

	cmd := &cobra.Command{
		Use:   "new <title...>",
		Short: "Create a new record",
		Long: `Create a new record with the next free ID.

Links are given as ID[:COMMENT[:REVERSE_COMMENT]]; when REVERSE_COMMENT is
set the linked record gets a link back. --supersede ID is shorthand for
--link "ID:Supersedes:Superseded by".`,
		Example: `  adr new Use PostgreSQL
  adr new -l "2:Amends:Amended by" Use PostgreSQL 16
  adr new -s 3 Replace YAML with TOML`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := parseLinks(links)
			if err != nil {
				return err
			}
			for _, id := range supersede {
				specs = append(specs, link.New(id, supersedes, supersededBy))
			}

			svc, err := g.service()
			if err != nil {
				return err
			}

			rec, err := svc.CreateRecord(cmd.Context(), strings.Join(args, " "), specs)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.File)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&links, "link", "l", nil, "Link to another record: ID[:COMMENT[:REVERSE_COMMENT]] (repeatable)")
	cmd.Flags().IntSliceVarP(&supersede, "supersede", "s", nil, "Supersede the record with this ID (repeatable)")
	return cmd
}

// parseLinks parses every raw specification, reporting the first invalid one.
func parseLinks(raw []string) ([]link.Spec, error) {
	specs := make([]link.Spec, 0, len(raw))
	for _, r := range raw {
		s, err := link.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid --link: %w", err)
		}
		specs = append(specs, s)
	}
	return specs, nil
}
