// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kallard6502/mos6502asm/assembler"
)

var (
	outPath string
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mos6502asm",
		Short: "A multi-pass assembler for the MOS 6502 instruction set",
	}
	root.AddCommand(newAssembleCmd())
	return root
}

func newAssembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble <file>",
		Short: "Assemble a 6502 source file into a flat binary image",
		Args:  cobra.ExactArgs(1),
		RunE:  runAssemble,
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each assembly stage")
	return cmd
}

func runAssemble(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer in.Close()

	trace := cmd.ErrOrStderr()
	result, err := assembler.Assemble(in, verbose, trace)
	if err != nil {
		return fmt.Errorf("failed to assemble %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	if _, err := out.Write(result.Code); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
