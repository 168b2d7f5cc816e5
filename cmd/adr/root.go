package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/adr"
	"github.com/aretw0/adr/pkg/core"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	dir     string
}

// newRootCmd represents the base command when called without any subcommands.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "adr",
		Short: "Manage Architecture Decision Records",
		Long: `adr creates and links Architecture Decision Records kept as markdown
files in your repository. Links are given as ID[:COMMENT[:REVERSE_COMMENT]].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", "", "Project root (default: nearest directory with .adr)")

	cmd.AddCommand(
		newInitCmd(g),
		newNewCmd(g),
		newLinkCmd(g),
		newListCmd(g),
		newShowCmd(g),
		newWatchCmd(g),
		newInfoCmd(g),
		newVersionCmd(),
	)
	return cmd
}

// root returns the project root: --dir when set, otherwise the nearest
// ancestor of the working directory holding .adr.
func (g *globalFlags) root() (string, error) {
	if g.dir != "" {
		return g.dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return adr.FindRoot(cwd)
}

// service opens the project service.
func (g *globalFlags) service(opts ...adr.Option) (*core.Service, error) {
	root, err := g.root()
	if err != nil {
		return nil, err
	}
	opts = append([]adr.Option{adr.WithLogger(slog.Default())}, opts...)
	return adr.New(root, opts...)
}
