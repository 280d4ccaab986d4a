package main

import (
	"cmp"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flier/llrb/pkg/llrb"
)

// shell owns the tree every subcommand operates on, plus the config that
// shaped it. Subcommands are methods so they can close over this state the
// way Sumatoshi's command constructors close over their own flags.
type shell struct {
	cfg  *Config
	tree *llrb.Tree[int64, string]
}

func newTree(cfg *Config) *llrb.Tree[int64, string] {
	return llrb.NewWithCapacity[int64, string](cmp.Compare[int64], cfg.Tree.InitialCapacity)
}

func parseArgKey(s string) (int64, error) {
	key, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing key %q: %w", s, err)
	}

	return key, nil
}

func (s *shell) insertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <key> <value>",
		Short: "Insert a key/value pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			key, err := parseArgKey(args[0])
			if err != nil {
				return err
			}

			s.tree.Reserve(1)

			outcome, err := s.tree.Insert(key, args[1])
			if err != nil {
				return &OpError{Op: "insert", Key: args[0], Err: err}
			}

			out := cobraCmd.OutOrStdout()
			if outcome == llrb.AlreadyPresent {
				printWarn(out, "%d already present, unchanged\n", key)
			} else {
				printOK(out, "inserted %d\n", key)
			}

			return nil
		},
	}
}

func (s *shell) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Look up a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			key, err := parseArgKey(args[0])
			if err != nil {
				return err
			}

			out := cobraCmd.OutOrStdout()
			if v := s.tree.Get(key); v.IsSome() {
				fmt.Fprintln(out, v.Unwrap())
			} else {
				printErr(out, "%d not found\n", key)
			}

			return nil
		},
	}
}

func (s *shell) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <key> <value>",
		Short: "Overwrite the value stored at an existing key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			key, err := parseArgKey(args[0])
			if err != nil {
				return err
			}

			res := s.tree.Update(key, args[1])
			if res.IsErr() {
				return &OpError{Op: "update", Key: args[0], Err: res.UnwrapErr()}
			}

			printOK(cobraCmd.OutOrStdout(), "updated %d (was %q)\n", key, res.Unwrap().V1)

			return nil
		},
	}
}

func (s *shell) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Remove a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			key, err := parseArgKey(args[0])
			if err != nil {
				return err
			}

			out := cobraCmd.OutOrStdout()
			if pair := s.tree.Delete(key); pair.IsSome() {
				printOK(out, "deleted %d (was %q)\n", key, pair.Unwrap().V1)
			} else {
				printErr(out, "%d not found\n", key)
			}

			return nil
		},
	}
}

func (s *shell) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <min> <max>",
		Short: "List key/value pairs in [min, max]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			minKey, err := parseArgKey(args[0])
			if err != nil {
				return err
			}

			maxKey, err := parseArgKey(args[1])
			if err != nil {
				return err
			}

			tbl := newKVTable("key", "value")
			count := 0
			for k, v := range s.tree.All(minKey, maxKey) {
				tbl.AppendRow(table.Row{k, v})
				count++
			}

			out := cobraCmd.OutOrStdout()
			fmt.Fprintln(out, tbl.Render())
			fmt.Fprintf(out, "%d entries\n", count)

			return nil
		},
	}
}

func (s *shell) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Apply a batch file of insert/update/delete/get lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return s.runBatchFile(cobraCmd.OutOrStdout(), args[0])
		},
	}
}

func (s *shell) runBatchFile(out io.Writer, path string) error {
	ops, raw, err := loadBatchFile(path)
	if err != nil {
		return err
	}

	if len(raw) == 0 {
		return nil
	}

	src := &raw[0]

	s.tree.Reserve(len(ops))

	for _, op := range ops {
		if err := s.runBatchOp(out, op, src); err != nil {
			return err
		}
	}

	return nil
}

func (s *shell) runBatchOp(out io.Writer, op batchOp, src *byte) error {
	key, err := parseKey(op, src)
	if err != nil {
		return fmt.Errorf("parsing key: %w", err)
	}

	value := op.valueString(src)

	switch op.verbString(src) {
	case "insert":
		if _, err := s.tree.Insert(key, value); err != nil {
			return err
		}
	case "update":
		if res := s.tree.Update(key, value); res.IsErr() {
			printWarn(out, "update %d: %v\n", key, res.UnwrapErr())
		}
	case "delete":
		s.tree.Delete(key)
	case "get":
		if v := s.tree.Get(key); v.IsSome() {
			fmt.Fprintln(out, v.Unwrap())
		}
	default:
		return fmt.Errorf("%w: unknown verb %q", ErrMalformedBatchLine, op.verbString(src))
	}

	return nil
}
