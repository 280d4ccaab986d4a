// Command llrbctl is an interactive and batch-mode shell over a single
// left-leaning red-black tree, used to exercise pkg/llrb by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flier/llrb/pkg/xerrors"
)

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "llrbctl",
		Short:         "Inspect and drive an in-memory ordered key/value tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a llrbctl.yaml config file")

	s := &shell{}

	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		configureColor(cfg.Batch.ColorMode)

		s.cfg = cfg
		s.tree = newTree(cfg)

		return nil
	}

	root.AddCommand(
		s.insertCmd(),
		s.getCmd(),
		s.updateCmd(),
		s.deleteCmd(),
		s.rangeCmd(),
		s.loadCmd(),
	)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError tells a known tree-operation failure (full tree, key not
// found) apart from an unrelated one (bad flags, bad config) so the two can
// be rendered differently: an OpError already names the subcommand and key
// that failed and is printed through printErr, a plain error is printed
// as-is on its own line.
func reportError(w *os.File, err error) {
	if opErr, ok := xerrors.AsA[*OpError](err); ok {
		printErr(w, "%s\n", opErr)
		return
	}

	fmt.Fprintln(w, err)
}
