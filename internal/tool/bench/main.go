// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Benchmark tool to compare performance between multiple compression
// implementations.
//
// Example usage:
//	$ go run main.go -files twain.txt,digits.txt -sizes 1e4,1e5
//
//	BENCHMARK: twain.txt:1e5
//		codec           ratio     enc MB/s     dec MB/s ok
//		xz              0.305         2.10        18.92 yes
//		kp-flate        0.364        55.41       201.33 yes
//		...
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tehsmeely/lizards/internal/testutil"
	"github.com/tehsmeely/lizards/internal/tool/bench"
)

func main() {
	files := flag.String("files", "", "comma-separated list of input files (empty: synthetic repeats data)")
	sizes := flag.String("sizes", "1e5", "comma-separated list of input sizes")
	flag.Parse()

	var inputs = map[string][]byte{}
	if *files == "" {
		inputs["repeats"] = testutil.RandRepeats(1<<20, 0)
	}
	for _, f := range split(*files) {
		b, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		inputs[f] = b
	}

	for name, data := range inputs {
		for _, sz := range split(*sizes) {
			n, err := strconv.ParseFloat(sz, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			input := testutil.ResizeData(data, int(n))
			results, err := bench.Run(input)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			bench.Print(os.Stdout, fmt.Sprintf("%s:%s", name, sz), results)
		}
	}
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
