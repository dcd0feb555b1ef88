// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Command dmenc encodes a message into a Data Matrix ECC-200 symbol and
// prints either the raw codeword sequence or an ASCII-art rendering of
// the finished symbol, depending on whether standard output is a TTY.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/ericlevine/dmencoder/datamatrix/encoder"
)

var g = struct {
	shape                  string
	minW, minH, maxW, maxH int
	output                 string
}{
	shape: "none",
}

func usage() {
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("[message]")
	getopt.FlagLong(&g.shape, "shape", 's',
		"symbol shape: none, square, or rect", "shape")
	getopt.FlagLong(&g.minW, "min-width", 0, "minimum symbol width in modules", "cols")
	getopt.FlagLong(&g.minH, "min-height", 0, "minimum symbol height in modules", "rows")
	getopt.FlagLong(&g.maxW, "max-width", 0, "maximum symbol width in modules", "cols")
	getopt.FlagLong(&g.maxH, "max-height", 0, "maximum symbol height in modules", "rows")
	getopt.FlagLong(&g.output, "output", 'o',
		"output format: codewords or ascii; default depends on whether "+
			"stdout is a terminal", "format")
	getopt.Parse()

	if g.output == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			g.output = "ascii"
		} else {
			g.output = "codewords"
		}
	}
}

func shapeHint(s string) (encoder.SymbolShapeHint, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return encoder.ShapeHintForceNone, nil
	case "square":
		return encoder.ShapeHintForceSquare, nil
	case "rect", "rectangle":
		return encoder.ShapeHintForceRectangle, nil
	}
	return 0, fmt.Errorf("unknown shape %q: want none, square, or rect", s)
}

func readMessage() (string, error) {
	if args := getopt.Args(); len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func main() {
	parseFlags()

	shape, err := shapeHint(g.shape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmenc: %v\n", err)
		os.Exit(1)
	}

	msg, err := readMessage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmenc: reading input: %v\n", err)
		os.Exit(1)
	}

	if g.output == "codewords" {
		codewords, err := encoder.Encode(msg, shape, g.minW, g.minH, g.maxW, g.maxH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dmenc: %v\n", err)
			os.Exit(1)
		}
		for i, c := range codewords {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(c)
		}
		fmt.Println()
		return
	}

	matrix, err := encoder.EncodeSymbol(msg, shape, g.minW, g.minH, g.maxW, g.maxH)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmenc: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(matrix.StringWithChars("██", "  "))
}
