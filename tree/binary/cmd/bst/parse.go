package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

var errNoInput = errors.New("no input")

// readInts reads one line of space separated integers.
func readInts(r *bufio.Reader) ([]int, error) {
	raw, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			return nil, errNoInput
		}
	}

	return parseInts(strings.Fields(raw))
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		num, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = num
	}
	return out, nil
}

type op struct {
	remove bool
	key    int
}

func (o op) String() string {
	if o.remove {
		return "-" + strconv.Itoa(o.key)
	}
	return "+" + strconv.Itoa(o.key)
}

// parseOps parses "+k" (add) and "-k" (remove) arguments.
// A bare number is an add.
func parseOps(args []string) ([]op, error) {
	ops := make([]op, 0, len(args))
	for _, a := range args {
		o := op{}
		num := a
		switch {
		case strings.HasPrefix(a, "-"):
			o.remove, num = true, a[1:]
		case strings.HasPrefix(a, "+"):
			num = a[1:]
		}

		if num == "" || num[0] == '+' || num[0] == '-' {
			return nil, fmt.Errorf("bad op %q: want +k or -k", a)
		}
		k, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("bad op %q: %w", a, err)
		}
		o.key = k
		ops = append(ops, o)
	}
	return ops, nil
}

func joinInts(ks []int) string {
	return strings.Join(lo.Map(ks, func(k int, _ int) string {
		return strconv.Itoa(k)
	}), " ")
}
