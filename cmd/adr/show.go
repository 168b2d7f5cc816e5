package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShowCmd(g *globalFlags) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a record and its links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			svc, err := g.service()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if raw {
				content, err := svc.ReadRecord(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprint(out, content)
				return nil
			}

			rec, err := svc.GetRecord(cmd.Context(), id)
			if err != nil {
				return err
			}
			links, err := svc.Links(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%d. %s\n", rec.ID, rec.Title)
			fmt.Fprintf(out, "File:   %s\n", rec.File)
			fmt.Fprintf(out, "Date:   %s\n", rec.Date)
			fmt.Fprintf(out, "Status: %s\n", rec.Status)
			for _, l := range links {
				fmt.Fprintf(out, "  %s %d (%s)\n", l.Comment, l.ID, l.File)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	return cmd
}
