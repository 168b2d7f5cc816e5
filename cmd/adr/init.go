package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/adr"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	var (
		templateFile string
		versioning   bool
	)

	cmd := &cobra.Command{
		Use:   "init [docs-dir]",
		Short: "Initialize an adr project",
		Long: `Initialize an adr project in the current directory (or --dir).
This writes .adr/config.yaml, creates the records directory and the first
record "Record architecture decisions".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := g.dir
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = cwd
			}

			opts := []adr.Option{adr.WithLogger(slog.Default())}
			if len(args) == 1 {
				opts = append(opts, adr.WithDocsDir(args[0]))
			}
			if templateFile != "" {
				opts = append(opts, adr.WithTemplateFile(templateFile))
			}
			if cmd.Flags().Changed("versioning") {
				opts = append(opts, adr.WithVersioning(versioning))
			}

			svc, err := adr.Init(root, opts...)
			if err != nil {
				return fmt.Errorf("failed to initialize project: %w", err)
			}

			records, err := svc.ListRecords(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized adr project in %s (%d records)\n", root, len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateFile, "template", "", "Record template file, relative to the project root")
	cmd.Flags().BoolVar(&versioning, "versioning", false, "Commit every change with git")
	return cmd
}
