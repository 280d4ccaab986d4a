package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/flier/llrb/pkg/untrust"
	"github.com/flier/llrb/pkg/zc"
)

// ErrMalformedBatchLine is returned when a batch file line does not match
// one of the recognized "insert|update|delete|get key [value]" forms.
var ErrMalformedBatchLine = errors.New("llrbctl: malformed batch line")

// batchOp is one parsed line of a batch file. key/value are zc.Views into
// the file's raw bytes rather than copied strings, materialized only when
// the command actually runs.
type batchOp struct {
	verb  zc.View
	key   zc.View
	value zc.View
}

func (op batchOp) verbString(src *byte) string  { return op.verb.String(src) }
func (op batchOp) keyString(src *byte) string   { return op.key.String(src) }
func (op batchOp) valueString(src *byte) string { return op.value.String(src) }

// loadBatchFile reads path and parses it into a sequence of batchOps plus
// the backing buffer they reference. Parsing never panics on malformed
// input: every byte range is bounds-checked against the buffer's own length
// before a View is constructed over it.
func loadBatchFile(path string) ([]batchOp, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading batch file: %w", err)
	}

	input := untrust.Input(raw)
	if input.Empty() {
		return nil, raw, nil
	}

	var ops []batchOp

	for lineStart := 0; lineStart < len(raw); {
		lineEnd := lineStart
		for lineEnd < len(raw) && raw[lineEnd] != '\n' {
			lineEnd++
		}

		line := raw[lineStart:lineEnd]
		next := lineEnd + 1

		trimmed, trimOffset := trimLine(line)
		if len(trimmed) > 0 && trimmed[0] != '#' {
			op, err := parseBatchLine(trimmed, lineStart+trimOffset)
			if err != nil {
				return nil, raw, fmt.Errorf("line %q: %w", string(line), err)
			}

			ops = append(ops, op)
		}

		lineStart = next
	}

	return ops, raw, nil
}

// trimLine strips leading/trailing ASCII whitespace from line, returning
// the trimmed slice and how many bytes were stripped from the front (so
// callers can compute absolute offsets into the original buffer).
func trimLine(line []byte) ([]byte, int) {
	start := 0
	for start < len(line) && isSpace(line[start]) {
		start++
	}

	end := len(line)
	for end > start && isSpace(line[end-1]) {
		end--
	}

	return line[start:end], start
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' }

// parseBatchLine splits "verb key [value]" into up to three whitespace
// fields, constructing zc.Views relative to base (the absolute offset of
// fields[0] within the file buffer).
func parseBatchLine(fields []byte, base int) (batchOp, error) {
	var tokens [3][2]int // [start, end) pairs, relative to fields
	n := 0

	i := 0
	for i < len(fields) && n < len(tokens) {
		for i < len(fields) && isSpace(fields[i]) {
			i++
		}
		if i >= len(fields) {
			break
		}

		start := i
		for i < len(fields) && !isSpace(fields[i]) {
			i++
		}

		tokens[n] = [2]int{start, i}
		n++
	}

	if n < 2 {
		return batchOp{}, ErrMalformedBatchLine
	}

	op := batchOp{
		verb: zc.Raw(base+tokens[0][0], tokens[0][1]-tokens[0][0]),
		key:  zc.Raw(base+tokens[1][0], tokens[1][1]-tokens[1][0]),
	}

	if n == 3 {
		op.value = zc.Raw(base+tokens[2][0], tokens[2][1]-tokens[2][0])
	}

	return op, nil
}

// parseKey materializes a batchOp's key field as an int64.
func parseKey(op batchOp, src *byte) (int64, error) {
	return strconv.ParseInt(op.keyString(src), 10, 64)
}
