package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/bst/tree/binary"
	"go.lepak.sg/bst/tree/iterator"
)

type opsOptions struct {
	order string
}

func newOpsCmd(root *rootOptions) *cobra.Command {
	opts := &opsOptions{}

	cmd := &cobra.Command{
		Use:   "ops [+k|-k]...",
		Short: "Apply adds and removes to an empty set and show each step",
		Long: `Applies each argument in turn: +k adds k and -k removes k.
Removals alternate between pulling up the in-order successor and the
in-order predecessor, starting with the successor.`,
		Example: `bst ops -- +5 +3 +8 +1 +4 -5 -3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := iterator.ParseMethod(opts.order)
			if err != nil {
				return err
			}

			ops, err := parseOps(args)
			if err != nil {
				return err
			}

			s := binary.NewSet[int](binary.WithLogger[int](root.logger))
			data := pterm.TableData{{"Op", "Changed", "Strategy", "Count", m.String()}}

			for _, o := range ops {
				var changed bool
				strategy := ""
				if o.remove {
					strategy = s.NextStrategy().String()
					changed = s.Remove(o.key)
				} else {
					changed = s.Add(o.key)
				}

				it, err := s.Traverse(m)
				if err != nil {
					return err
				}

				var keys []int
				for it.Next() {
					keys = append(keys, it.Item())
				}

				data = append(data, []string{
					o.String(),
					strconv.FormatBool(changed),
					strategy,
					strconv.Itoa(s.Count()),
					joinInts(keys),
				})
			}

			out := cmd.OutOrStdout()
			if err := pterm.DefaultTable.WithHasHeader(true).WithData(data).WithWriter(out).Render(); err != nil {
				return err
			}

			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, s.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.order, "order", "o", "preorder", "traversal shown after each op")

	return cmd
}
