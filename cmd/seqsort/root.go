// Copyright 2025 go-seqalgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/convox/logger"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-seqalgo/seq"
	"github.com/ajroetker/go-seqalgo/seq/abi"
)

const (
	defaultOffset = 1024
	defaultMemory = 64 * 1024 // one WebAssembly page
)

type options struct {
	offset  int32
	memory  int
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:              "seqsort <algorithm> <numbers...>",
		Short:            "Sort, search and summarize integer sequences",
		SilenceErrors:    true,
		SilenceUsage:     true,
		TraverseChildren: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printUsage(cmd.OutOrStdout())
			return nil
		},
	}

	// Flags are parsed on the root, before the algorithm name, so that the
	// algorithm commands can take negative numbers as arguments.
	flags := cmd.Flags()
	flags.Int32Var(&opts.offset, "offset", defaultOffset, "byte offset in host memory the numbers are written to")
	flags.IntVar(&opts.memory, "memory", defaultMemory, "host memory size in bytes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log host calls to stderr")

	cmd.AddCommand(
		newSortCmd(opts, "bubble", "Bubble Sort", (*abi.Host).SortBubble),
		newSortCmd(opts, "quick", "Quick Sort", (*abi.Host).SortQuick),
		newSearchCmd(opts),
		newExtremeCmd(opts, "min", "Minimum", (*abi.Host).StatsMin),
		newExtremeCmd(opts, "max", "Maximum", (*abi.Host).StatsMax),
		newAverageCmd(opts),
		newInfoCmd(),
	)

	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: seqsort <algorithm> <numbers...>")
	fmt.Fprintln(w, "Algorithms: bubble, quick, bsearch, min, max, avg")
	fmt.Fprintln(w, "Example: seqsort quick 64 34 25 12 22 11 90")
}

// host writes nums into a fresh memory at the configured offset and returns
// a Host bound to it.
func (o *options) host(cmd *cobra.Command, nums []int32) (*abi.Host, error) {
	mem, err := seq.NewMemory(o.memory)
	if err != nil {
		return nil, errors.Wrap(err, "allocating memory")
	}
	if err := mem.Write(o.offset, nums); err != nil {
		return nil, errors.Wrapf(err, "writing %d numbers at offset %d", len(nums), o.offset)
	}

	w := io.Discard
	if o.verbose {
		w = cmd.ErrOrStderr()
	}
	return abi.New(mem, abi.WithLogger(logger.NewWriter("ns=seqsort", w))), nil
}

// numbers parses args and reports whether any remained. When none did, the
// standard notice has already been printed.
func numbers(cmd *cobra.Command, args []string) ([]int32, bool) {
	nums := parseNumbers(args)
	if len(nums) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Please provide numbers to sort")
		return nil, false
	}
	return nums, true
}

func newSortCmd(opts *options, name, label string, run func(*abi.Host, int32, int32) error) *cobra.Command {
	return &cobra.Command{
		Use:                name + " <numbers...>",
		Short:              "Sort numbers with " + label,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, ok := numbers(cmd, args)
			if !ok {
				return nil
			}
			h, err := opts.host(cmd, nums)
			if err != nil {
				return err
			}

			n := int32(len(nums))
			if err := run(h, opts.offset, n); err != nil {
				return err
			}
			sorted, err := h.Memory().Read(opts.offset, n)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, formatList(sorted))
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:                "bsearch <target> <sorted_numbers...>",
		Short:              "Sort numbers with quicksort, then binary search for target",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := numbers(cmd, args); !ok {
				return nil
			}
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: seqsort bsearch <target> <sorted_numbers...>")
				return nil
			}
			target, ok := parseNumber(args[0])
			if !ok {
				return errors.Errorf("invalid target %q", args[0])
			}

			// An empty list is searched like any other and reports not found.
			nums := parseNumbers(args[1:])
			h, err := opts.host(cmd, nums)
			if err != nil {
				return err
			}

			n := int32(len(nums))
			if err := h.SortQuick(opts.offset, n); err != nil {
				return err
			}
			idx, err := h.SearchBinary(opts.offset, n, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if idx == abi.NotFound {
				color.New(color.FgYellow).Fprintf(out, "%d not found in array\n", target)
				return nil
			}
			fmt.Fprintf(out, "Found %d at index %d\n", target, idx)
			return nil
		},
	}
}

func newExtremeCmd(opts *options, name, label string, run func(*abi.Host, int32, int32) (int32, error)) *cobra.Command {
	return &cobra.Command{
		Use:                name + " <numbers...>",
		Short:              "Print the " + label + " of numbers",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, ok := numbers(cmd, args)
			if !ok {
				return nil
			}
			h, err := opts.host(cmd, nums)
			if err != nil {
				return err
			}

			x, err := run(h, opts.offset, int32(len(nums)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", label, x)
			return nil
		},
	}
}

func newAverageCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:                "avg <numbers...>",
		Short:              "Print the arithmetic mean of numbers",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, ok := numbers(cmd, args)
			if !ok {
				return nil
			}
			h, err := opts.host(cmd, nums)
			if err != nil {
				return err
			}

			avg, err := h.StatsAverage(opts.offset, int32(len(nums)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average: %s\n", formatFixed2(avg))
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected dispatch level",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dispatch: %s\n", seq.CurrentName())
			fmt.Fprintf(out, "Width: %d bytes\n", seq.CurrentWidth())
			fmt.Fprintf(out, "Lanes: %d\n", seq.MaxLanes())
		},
	}
}
