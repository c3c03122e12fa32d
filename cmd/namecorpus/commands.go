package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/backmassage/namecorpus/internal/catalog"
	"github.com/backmassage/namecorpus/internal/check"
	"github.com/backmassage/namecorpus/internal/config"
	"github.com/backmassage/namecorpus/internal/display"
	"github.com/backmassage/namecorpus/internal/logging"
	"github.com/backmassage/namecorpus/internal/pipeline"
)

// app carries the configuration shared by the command tree and the exit
// status chosen by the command that ran.
type app struct {
	cfg      config.Config
	negated  config.NegatedFlags
	exitCode int
}

func newApp() *app {
	return &app{cfg: config.DefaultConfig()}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "namecorpus",
		Short:         "Generate filename test corpora for file-renaming tools",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadSettings(cmd)
		},
	}
	root.SetVersionTemplate(color.New(color.Bold).Sprint("namecorpus") + " {{.Version}}\n")
	config.BindPersistentFlags(root.PersistentFlags(), &a.cfg, &a.negated)

	root.AddCommand(
		a.buildCommand(config.GeneratorEdge, "Create the edge-case corpus (100 adversarial names)"),
		a.buildCommand(config.GeneratorTypical, "Create the typical corpus (100 everyday names)"),
		a.listCommand(),
		a.checkCommand(),
	)
	return root
}

// loadSettings overlays the optional config file and resolves negated flags.
// Flags given on the command line win over the file.
func (a *app) loadSettings(cmd *cobra.Command) error {
	if a.cfg.ConfigFile != "" {
		if err := config.LoadFile(a.cfg.ConfigFile, &a.cfg, cmd.Flags().Changed); err != nil {
			return err
		}
	}
	config.ApplyNegatedFlags(&a.cfg, &a.negated)
	return nil
}

func (a *app) buildCommand(gen config.Generator, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(gen) + " [dir]",
		Short: short,
		Long: short + ".\n\nFiles are written into dir (default " + config.DefaultDir(gen) + "),\n" +
			"which is created if needed. Existing files with the same names are overwritten.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.Generator = gen
			if len(args) == 1 {
				a.cfg.OutputDir = config.NormalizeDirArg(args[0])
			}
			log, err := a.start(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer log.Close()

			stats, err := pipeline.Run(&a.cfg, log)
			if err != nil {
				log.Error("%v", err)
				a.exitCode = 1
				return nil
			}
			a.exitCode = pipeline.ExitCode(&a.cfg, stats)
			return nil
		},
	}
	config.BindBuildFlags(cmd.Flags(), &a.cfg)
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "list [edge|typical]",
		Short:     "Print the candidate names by category without touching the filesystem",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(config.GeneratorEdge), string(config.GeneratorTypical)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []config.Generator{config.GeneratorEdge, config.GeneratorTypical}
			if len(args) == 1 {
				gen, err := config.ParseGenerator(args[0])
				if err != nil {
					return err
				}
				kinds = []config.Generator{gen}
			}
			for _, gen := range kinds {
				printCatalog(cmd.OutOrStdout(), gen)
			}
			return nil
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Probe how the filesystem under dir treats awkward names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = config.NormalizeDirArg(args[0])
			}
			log, err := a.start(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer log.Close()

			if !check.RunCheck(dir, a.cfg.Verbose, log) {
				a.exitCode = 1
			}
			return nil
		},
	}
}

// start validates the final configuration, opens the logger and prints the
// banner.
func (a *app) start(out io.Writer) (*logging.Logger, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return nil, err
	}
	display.PrintBanner(out, version)
	return log, nil
}

func printCatalog(w io.Writer, gen config.Generator) {
	kind := catalog.Kind(gen)
	candidates := catalog.ForKind(kind)
	fmt.Fprintf(w, "%s (%d names)\n", gen, len(candidates))
	var current catalog.Category
	for _, c := range candidates {
		if c.Category != current {
			current = c.Category
			fmt.Fprintf(w, "  %s\n", current)
		}
		fmt.Fprintf(w, "    %s\n", display.SafeName(c.Name))
	}
}
