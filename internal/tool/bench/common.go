// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the lizard codec against other compression
// implementations with respect to encode speed, decode speed, and
// ratio. Individual implementations are referred to as codecs.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"sort"
	"testing"
)

// Encoder wraps w so that writes are compressed.
// Decoder wraps r so that reads are decompressed.
type Encoder func(w io.Writer) io.WriteCloser
type Decoder func(r io.Reader) io.ReadCloser

type codec struct {
	name string
	enc  Encoder
	dec  Decoder
}

var codecs []codec

// Register adds a codec under the given name. Registration order is the
// report order.
func Register(name string, enc Encoder, dec Decoder) {
	codecs = append(codecs, codec{name: name, enc: enc, dec: dec})
}

// Names reports the registered codec names.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for _, c := range codecs {
		names = append(names, c.name)
	}
	return names
}

// Result holds one codec's measurements on one input.
type Result struct {
	Name      string
	Ratio     float64 // compressed size / raw size
	EncRate   float64 // MB/s
	DecRate   float64 // MB/s
	RoundTrip bool
}

func encode(c codec, input []byte) ([]byte, error) {
	var buf bytes.Buffer
	wr := c.enc(&buf)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(c codec, comp []byte) ([]byte, error) {
	rd := c.dec(bytes.NewReader(comp))
	defer rd.Close()
	return io.ReadAll(rd)
}

// Run measures every registered codec on input.
func Run(input []byte) ([]Result, error) {
	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		comp, err := encode(c, input)
		if err != nil {
			return nil, fmt.Errorf("%s: encode: %v", c.name, err)
		}
		output, err := decode(c, comp)
		if err != nil {
			return nil, fmt.Errorf("%s: decode: %v", c.name, err)
		}

		r := Result{
			Name:      c.name,
			Ratio:     float64(len(comp)) / float64(len(input)),
			RoundTrip: bytes.Equal(input, output),
		}
		r.EncRate = rate(len(input), testing.Benchmark(func(b *testing.B) {
			runtime.GC()
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				if _, err := encode(c, input); err != nil {
					b.Fatal(err)
				}
			}
		}))
		r.DecRate = rate(len(input), testing.Benchmark(func(b *testing.B) {
			runtime.GC()
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				if _, err := decode(c, comp); err != nil {
					b.Fatal(err)
				}
			}
		}))
		results = append(results, r)
	}
	return results, nil
}

func rate(n int, br testing.BenchmarkResult) float64 {
	if br.N == 0 || br.T == 0 {
		return 0
	}
	bytesTotal := float64(n) * float64(br.N)
	return bytesTotal / br.T.Seconds() / 1e6
}

// Print writes results as an aligned table sorted by ratio.
func Print(w io.Writer, label string, results []Result) {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Ratio < sorted[j].Ratio })

	fmt.Fprintf(w, "BENCHMARK: %s\n", label)
	fmt.Fprintf(w, "\t%-12s %8s %12s %12s %s\n", "codec", "ratio", "enc MB/s", "dec MB/s", "ok")
	for _, r := range sorted {
		ok := "yes"
		if !r.RoundTrip {
			ok = "NO"
		}
		fmt.Fprintf(w, "\t%-12s %8.3f %12.2f %12.2f %s\n", r.Name, r.Ratio, r.EncRate, r.DecRate, ok)
	}
}
