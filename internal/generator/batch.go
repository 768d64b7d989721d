package generator

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// BatchContentType is the MIME type of an encoded batch.
const BatchContentType = "text/plain; charset=utf-8"

// EncodeBatch joins identifiers with newlines. There is no trailing newline
// and no header.
func EncodeBatch(ids []string) []byte {
	return []byte(strings.Join(ids, "\n"))
}

// DecodeBatch reads an encoded batch back as one identifier per line. Lines
// are returned as-is.
func DecodeBatch(r io.Reader) ([]string, error) {
	ids := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ids = append(ids, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}
	return ids, nil
}
