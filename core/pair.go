// SPDX-License-Identifier: MIT
//
// File: pair.go
// Role: textual form of Pair, shared by dataset edge keys and report output.
// Policy:
//   - Accepted forms: "(a, b)", "[a, b]", "a,b"; whitespace is ignored.
//   - MarshalText always emits the canonical "(a, b)".

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPair indicates text that does not denote two integer endpoints.
var ErrMalformedPair = errors.New("core: malformed pair")

// ParsePair reads an endpoint pair such as "(14319, 14320)".
func ParsePair(s string) (Pair, error) {
	body := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")"),
		strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]"):
		body = body[1 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}
	u, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %q: %w", ErrMalformedPair, s, err)
	}

	return Pair{U: u, V: v}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Pair) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pair) UnmarshalText(text []byte) error {
	q, err := ParsePair(string(text))
	if err != nil {
		return err
	}
	*p = q

	return nil
}
