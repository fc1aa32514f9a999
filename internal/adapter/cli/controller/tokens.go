package controller

import (
	"bufio"
	"io"
)

// TokenReader yields whitespace-delimited tokens from the command input.
// Newlines carry no meaning: a command and its arguments may arrive on one
// line or across several, matching token-at-a-time console reads.
type TokenReader struct {
	scanner *bufio.Scanner
}

func NewTokenReader(r io.Reader) *TokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &TokenReader{scanner: scanner}
}

// Next returns the next token, or io.EOF once the input is exhausted.
func (t *TokenReader) Next() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
