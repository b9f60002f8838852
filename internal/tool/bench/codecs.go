// Copyright 2026, the lizards authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"compress/flate"
	"io"

	kpflate "github.com/klauspost/compress/flate"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"

	"github.com/tehsmeely/lizards"
)

func init() {
	Register("lizards",
		func(w io.Writer) io.WriteCloser {
			zw, err := lizards.NewWriter(w, nil)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			zr, err := lizards.NewReader(r, nil)
			if err != nil {
				panic(err)
			}
			return zr
		})

	Register("std-flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			return flate.NewReader(r)
		})

	Register("kp-flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := kpflate.NewWriter(w, kpflate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			return kpflate.NewReader(r)
		})

	Register("snappy",
		func(w io.Writer) io.WriteCloser {
			return snappy.NewBufferedWriter(w)
		},
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(snappy.NewReader(r))
		})

	Register("lz4",
		func(w io.Writer) io.WriteCloser {
			return lz4.NewWriter(w)
		},
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(lz4.NewReader(r))
		})

	Register("xz",
		func(w io.Writer) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		},
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				panic(err)
			}
			return io.NopCloser(zr)
		})
}
