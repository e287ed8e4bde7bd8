package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"go.lepak.sg/bst/tree/binary"
	"go.uber.org/zap"
)

type buildOptions struct {
	mode string
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild a tree from its in-order and pre-order traversals",
		Long: `Reads two lines from stdin: the in-order traversal, then the pre-order
traversal of a tree, each as space separated integers. Prints the tree.`,
		Example: `printf '1 2 3\n2 1 3\n' | bst build --mode rec`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var impl func([]int, []int) (*binary.Tree[int], error)
			switch opts.mode {
			case "iter", "i":
				// actual type params of the function cannot be inferred
				// even though the variable has the fully instantiated type
				impl = binary.BuildFromPreAndInOrderIter[[]int, int]
			case "rec", "r":
				impl = binary.BuildFromPreAndInOrderRec[[]int, int]
			default:
				return fmt.Errorf("not a valid mode: %q", opts.mode)
			}

			in := bufio.NewReader(cmd.InOrStdin())
			inorder, err := readInts(in)
			if err != nil {
				return fmt.Errorf("in-order: %w", err)
			}
			preorder, err := readInts(in)
			if err != nil {
				return fmt.Errorf("pre-order: %w", err)
			}

			root.logger.Debug("build",
				zap.String("mode", opts.mode),
				zap.Ints("inorder", inorder),
				zap.Ints("preorder", preorder),
			)

			tr, err := impl(preorder, inorder)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, tr.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "iter", "builder to use (iter or rec)")

	return cmd
}
