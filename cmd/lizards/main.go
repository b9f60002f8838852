// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command lizards compresses and decompresses files in the lizard
// format.
//
// Example usage:
//	$ lizards -w 4096 testfile.txt
//	$ lizards -d testfile.txt.lizard
//
// With -debug, a human-readable dump of the token stream and code table
// is written alongside the output. With -graph, the distribution of
// code lengths over the symbol alphabet is rendered as an SVG chart.
// Neither affects the compressed bytes.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/tehsmeely/lizards"
)

const lizardExt = ".lizard"

func main() {
	decode := flag.Bool("d", false, "decompress instead of compress")
	window := flag.Int("w", lizards.DefaultWindowSize, "lookback window size (power of two)")
	output := flag.String("o", "", "output file (default: derived from input name)")
	debugFile := flag.String("debug", "", "write a token/tree dump to this file (compress only)")
	graphFile := flag.String("graph", "", "write an SVG of code lengths to this file (compress only)")
	noVerify := flag.Bool("noverify", false, "skip checksum verification (decompress only)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lizards [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	var err error
	if *decode {
		err = decompressFile(input, *output, *noVerify)
	} else {
		err = compressFile(input, *output, *window, *debugFile, *graphFile)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "lizards:", err)
		os.Exit(1)
	}
}

func compressFile(input, output string, window int, debugFile, graphFile string) error {
	if output == "" {
		output = input + lizardExt
	}
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	conf := &lizards.WriterConfig{WindowSize: window, Stats: new(lizards.Stats)}
	if debugFile != "" {
		df, err := os.Create(debugFile)
		if err != nil {
			return err
		}
		defer df.Close()
		conf.DebugWriter = df
	}

	out, err := lizards.Compress(src, conf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, out, 0o666); err != nil {
		return err
	}
	if graphFile != "" {
		if err := writeCodeLenGraph(graphFile, conf.Stats); err != nil {
			return err
		}
	}

	st := conf.Stats
	fmt.Printf("%s -> %s: %d -> %d bytes (%.1f%%), %d literals, %d matches, %d chunks\n",
		input, output, st.InputSize, st.OutputSize,
		100*float64(st.OutputSize)/float64(max64(st.InputSize, 1)),
		st.Literals, st.Matches, st.Chunks)
	return nil
}

func decompressFile(input, output string, noVerify bool) error {
	if output == "" {
		output = strings.TrimSuffix(input, lizardExt)
		if output == input {
			output = input + ".out"
		}
	}
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	out, err := lizards.Decompress(src, &lizards.ReaderConfig{SkipChecksum: noVerify})
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, out, 0o666); err != nil {
		return err
	}
	fmt.Printf("%s -> %s: %d -> %d bytes\n", input, output, len(src), len(out))
	return nil
}

// writeCodeLenGraph plots code length per symbol: short bars over
// frequent symbols is the shape a healthy tree should have.
func writeCodeLenGraph(path string, st *lizards.Stats) error {
	xvals := make([]float64, 0, len(st.CodeLens))
	yvals := make([]float64, 0, len(st.CodeLens))
	for sym, n := range st.CodeLens {
		if n == 0 {
			continue
		}
		xvals = append(xvals, float64(sym))
		yvals = append(yvals, float64(n))
	}

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "symbol"},
		YAxis: chart.YAxis{Name: "code length (bits)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{DotWidth: 3},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
