// This file is part of mos6502.
//
// mos6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mos6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mos6502.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// CappedWriter is an implementation of io.Writer that keeps only the first
// bytes written to it. Once the buffer is full further writes are discarded.
// Write always reports the full length of p as written and never returns an
// error.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

// String returns the buffered bytes.
func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

// Write implements io.Writer
func (w *CappedWriter) Write(p []byte) (n int, err error) {
	remaining := w.size - len(w.buffer)

	if len(p) > remaining {
		w.buffer = append(w.buffer, p[:remaining]...)
	} else {
		w.buffer = append(w.buffer, p...)
	}

	// the whole of p is reported as written so that writers such as
	// fmt.Fprintf do not treat the cap as an error
	return len(p), nil
}
