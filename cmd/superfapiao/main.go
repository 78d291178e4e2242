package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/version"
)

type globalFlags struct {
	configPath string
	verbose    bool
	debug      bool
}

func (g *globalFlags) logger() *logger.Logger {
	log := logger.New(logger.WithPrefix("[superfapiao] "))
	log.SetVerbose(g.verbose || g.debug)
	if g.debug {
		log.SetLevel(logger.LevelTrace)
	}
	return log
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "superfapiao",
		Short:         "Lay out invoices and tickets on printable pages",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(version.GetVersionInfo() + "\n")

	root.PersistentFlags().StringVar(&g.configPath, "config", "superfapiao.yaml", "path to config file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug mode with trace logging")

	root.AddCommand(
		layoutCmd(g),
		sizesCmd(),
		previewCmd(g),
		exportCmd(g),
		inspectCmd(g),
		versionCmd(g),
	)
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
