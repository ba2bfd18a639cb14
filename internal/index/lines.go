package index

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	logio "github.com/user/logview/internal/io"
)

// ErrNotText reports that the file content is not valid UTF-8 text.
var ErrNotText = errors.New("not valid UTF-8 text")

// LineIndex stores byte offsets for each line in a file.
// Offsets partition the file: line i spans [offsets[i], offsets[i+1]),
// the last line spans [offsets[n-1], size). Built once; lines are never
// re-scanned unless the file is explicitly reloaded.
type LineIndex struct {
	offsets []int64 // byte offset of each line start
	file    *logio.MappedFile
}

// BuildLineIndex scans the file once and builds a line offset index.
// Fails with ErrNotText if the content cannot be decoded as UTF-8 text.
func BuildLineIndex(file *logio.MappedFile) (*LineIndex, error) {
	size := file.Size()
	if size == 0 {
		return &LineIndex{file: file}, nil
	}

	// Estimate initial capacity (assume ~100 bytes per line)
	estimatedLines := int(size/100) + 1
	offsets := make([]int64, 0, estimatedLines)
	offsets = append(offsets, 0) // First line starts at 0

	// Read in chunks to find newlines
	const chunkSize = 64 * 1024 // 64KB chunks
	buf := make([]byte, chunkSize)

	// carry holds the prefix of a rune split across a chunk boundary
	var carry []byte

	var pos int64
	for pos < size {
		readSize := chunkSize
		if pos+int64(readSize) > size {
			readSize = int(size - pos)
		}

		n, err := file.ReadAt(buf[:readSize], pos)
		if err != nil {
			return nil, err
		}
		chunk := buf[:n]

		carry, err = validateText(chunk, carry)
		if err != nil {
			return nil, err
		}

		// Find all newlines in this chunk
		offset := 0
		for {
			idx := bytes.IndexByte(chunk[offset:], '\n')
			if idx == -1 {
				break
			}
			lineStart := pos + int64(offset) + int64(idx) + 1
			if lineStart < size {
				offsets = append(offsets, lineStart)
			}
			offset += idx + 1
		}

		pos += int64(n)
	}

	if len(carry) > 0 {
		return nil, fmt.Errorf("truncated rune at end of file: %w", ErrNotText)
	}

	return &LineIndex{
		offsets: offsets,
		file:    file,
	}, nil
}

// validateText checks a chunk for valid UTF-8, carrying a split rune
// over to the next call. NUL bytes are rejected as binary content.
func validateText(chunk, carry []byte) ([]byte, error) {
	if bytes.IndexByte(chunk, 0) != -1 {
		return nil, fmt.Errorf("NUL byte in content: %w", ErrNotText)
	}

	if len(carry) > 0 {
		take := utf8.UTFMax - len(carry)
		if take > len(chunk) {
			take = len(chunk)
		}
		head := append(carry, chunk[:take]...)
		if !utf8.FullRune(head) {
			// chunk smaller than the rune remainder, keep accumulating
			return head, nil
		}
		r, rsize := utf8.DecodeRune(head)
		if r == utf8.RuneError && rsize <= 1 {
			return nil, ErrNotText
		}
		chunk = chunk[rsize-len(carry):]
	}

	// Hold back a trailing incomplete rune for the next chunk
	rest := chunk
	tail := len(rest)
	for tail > 0 && tail > len(rest)-utf8.UTFMax && !utf8.RuneStart(rest[tail-1]) {
		tail--
	}
	var next []byte
	if tail > 0 && !utf8.FullRune(rest[tail-1:]) {
		next = append(next, rest[tail-1:]...)
		rest = rest[:tail-1]
	}

	if !utf8.Valid(rest) {
		return nil, ErrNotText
	}
	return next, nil
}

// LineCount returns the total number of lines
func (idx *LineIndex) LineCount() int {
	return len(idx.offsets)
}

// Span returns the byte span [start, end) of a line, including any
// trailing terminator. Spans are non-overlapping, strictly increasing,
// and together cover the file exactly.
func (idx *LineIndex) Span(lineNum int) (start, end int64) {
	if lineNum < 0 || lineNum >= len(idx.offsets) {
		return 0, 0
	}
	start = idx.offsets[lineNum]
	if lineNum+1 < len(idx.offsets) {
		end = idx.offsets[lineNum+1]
	} else {
		end = idx.file.Size()
	}
	return start, end
}

// GetLine returns the content of line at given index (0-based),
// materialized on demand from its byte span. Trailing terminators
// are stripped.
func (idx *LineIndex) GetLine(lineNum int) ([]byte, error) {
	if lineNum < 0 || lineNum >= len(idx.offsets) {
		return nil, nil
	}

	start, end := idx.Span(lineNum)
	content, err := idx.file.ReadRange(start, end)
	if err != nil {
		return nil, err
	}

	content = bytes.TrimRight(content, "\r\n")
	if content == nil {
		content = []byte{}
	}
	return content, nil
}

// GetLines returns a range of lines efficiently
func (idx *LineIndex) GetLines(start, count int) ([][]byte, error) {
	if start < 0 {
		start = 0
	}
	if start >= len(idx.offsets) {
		return nil, nil
	}
	if start+count > len(idx.offsets) {
		count = len(idx.offsets) - start
	}

	lines := make([][]byte, count)
	for i := 0; i < count; i++ {
		line, err := idx.GetLine(start + i)
		if err != nil {
			return nil, err
		}
		lines[i] = line
	}
	return lines, nil
}

// ByteOffset returns the byte offset of a line
func (idx *LineIndex) ByteOffset(lineNum int) int64 {
	if lineNum < 0 || lineNum >= len(idx.offsets) {
		return -1
	}
	return idx.offsets[lineNum]
}
