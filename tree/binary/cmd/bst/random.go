package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.lepak.sg/bst/tree/binary"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type randomOptions struct {
	seed     int64
	num      int
	balanced bool
	rounds   int
	timeout  time.Duration
}

func newRandomCmd(root *rootOptions) *cobra.Command {
	opts := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Build a tree from a random permutation of 0..n-1",
		Example: `bst random -n 15 -b
bst random -n 1000 --rounds 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.num < 0 {
				return fmt.Errorf("-n must not be negative, got %d", opts.num)
			}
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}

			ctx := cmd.Context()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			if opts.rounds <= 1 {
				return runRandomOnce(ctx, cmd, root.logger, opts)
			}
			return runRandomRounds(ctx, cmd, root.logger, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&opts.num, "num", "n", 10, "number of nodes in the tree")
	cmd.Flags().BoolVarP(&opts.balanced, "balanced", "b", false, "if true, keep building the tree until it is balanced")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 1, "build this many trees with consecutive seeds and only print their heights")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up on -b after this long (0 means never)")

	return cmd
}

func buildRandom(ctx context.Context, num int, seed int64, balanced bool) (*binary.Tree[int], int, error) {
	if balanced {
		return binary.BuildRandomBalanced(ctx, num, seed)
	}
	return binary.BuildRandom(num, seed), 1, nil
}

func runRandomOnce(ctx context.Context, cmd *cobra.Command, logger *zap.Logger, opts *randomOptions) error {
	logger.Info("building", zap.Int64("seed", opts.seed), zap.Int("num", opts.num))

	tr, attempts, err := buildRandom(ctx, opts.num, opts.seed, opts.balanced)
	if err != nil {
		return fmt.Errorf("seed %d: %w", opts.seed, err)
	}

	inorder := make([]int, 0, opts.num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "seed:", opts.seed)
	fmt.Fprintln(out, "preorder:", tr.PreOrderValues())
	fmt.Fprintln(out, "inorder:", inorder)
	fmt.Fprintln(out, "tree:")
	fmt.Fprintln(out, tr.String())

	actual, ideal := tr.Height()
	fmt.Fprintln(out, "height:", actual, "ideal:", ideal)

	if opts.balanced {
		fmt.Fprintln(out, "attempts:", attempts)
	}

	return nil
}

type roundResult struct {
	seed          int64
	actual, ideal int
	attempts      int
}

// runRandomRounds builds the trees concurrently. Each goroutine owns its
// tree, so there is no sharing between them.
func runRandomRounds(ctx context.Context, cmd *cobra.Command, logger *zap.Logger, opts *randomOptions) error {
	results := make([]roundResult, opts.rounds)

	g, ctx := errgroup.WithContext(ctx)
	for i := range results {
		i := i
		g.Go(func() error {
			seed := opts.seed + int64(i)
			tr, attempts, err := buildRandom(ctx, opts.num, seed, opts.balanced)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			if err := tr.Validate(); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}

			actual, ideal := tr.Height()
			results[i] = roundResult{seed: seed, actual: actual, ideal: ideal, attempts: attempts}
			logger.Debug("built", zap.Int64("seed", seed), zap.Int("height", actual))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	data := pterm.TableData{{"Seed", "Height", "Ideal", "Attempts"}}
	for _, r := range results {
		data = append(data, []string{
			strconv.FormatInt(r.seed, 10),
			strconv.Itoa(r.actual),
			strconv.Itoa(r.ideal),
			strconv.Itoa(r.attempts),
		})
	}

	return pterm.DefaultTable.WithHasHeader(true).WithData(data).WithWriter(cmd.OutOrStdout()).Render()
}
