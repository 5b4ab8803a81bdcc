// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package docker

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

const maxLineLength = 1 << 20

// lineWriter writes complete lines with a prefix. Multiple lineWriters may
// share a mutex, so lines of different streams do not interleave.
type lineWriter struct {
	mu     *sync.Mutex
	dst    io.Writer
	prefix string
}

func (w *lineWriter) writeLine(line []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := fmt.Fprintf(w.dst, "%s%s\n", w.prefix, line)

	return err //nolint:wrapcheck
}

// copyLines copies src to the writer line by line. On error, src is drained
// so the writing process does not block.
func (w *lineWriter) copyLines(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	for scanner.Scan() {
		err := w.writeLine(scanner.Bytes())
		if err != nil {
			_, _ = io.Copy(io.Discard, src)
			return fmt.Errorf("write: %w", err)
		}
	}

	err := scanner.Err()
	if err != nil {
		_, _ = io.Copy(io.Discard, src)
		return fmt.Errorf("read: %w", err)
	}

	return nil
}
