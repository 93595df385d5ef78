/*
 * gistio/compress.go, part of gogist.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gistio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//*zstd.Decoder doesn't implement io.ReadCloser, as its Close method returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//nopWriteCloser lets plain files go through the same path as compressed ones.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newEncoder(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return nopWriteCloser{w}, nil
	}
}

func newDecoder(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(strings.ToLower(name), ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}

//writer is a file with an encoder on top. Closing it flushes and closes both.
type writer struct {
	f   *os.File
	buf *bufio.Writer
	enc io.WriteCloser
}

func create(name string) (*writer, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, newErr(err.Error(), name, "create")
	}
	enc, err := newEncoder(name, f)
	if err != nil {
		f.Close()
		return nil, newErr("can't start compression: "+err.Error(), name, "create")
	}
	return &writer{f: f, enc: enc, buf: bufio.NewWriter(enc)}, nil
}

func (w *writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *writer) Close() error {
	err := w.buf.Flush()
	if err2 := w.enc.Close(); err == nil {
		err = err2
	}
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

//reader is a file with a decoder on top.
type reader struct {
	f   *os.File
	dec io.ReadCloser
}

func open(name string) (*reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, newErr(err.Error(), name, "open")
	}
	dec, err := newDecoder(name, bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, newErr("can't start decompression: "+err.Error(), name, "open")
	}
	return &reader{f: f, dec: dec}, nil
}

func (r *reader) Read(p []byte) (int, error) {
	return r.dec.Read(p)
}

func (r *reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}
