package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for instance parsing.
var (
	// ErrMalformedHeader indicates the size line could not be parsed as
	// either "p ocr n0 n1 m" or a bare "n0 n1".
	ErrMalformedHeader = errors.New("pace: malformed header line")

	// ErrMissingHeader indicates the input had no non-comment content.
	ErrMissingHeader = errors.New("pace: missing header line")

	// ErrMalformedEdge indicates an edge line did not parse as two integers.
	ErrMalformedEdge = errors.New("pace: malformed edge line")

	// ErrVertexOutOfRange indicates an edge endpoint fell outside its side's
	// declared range.
	ErrVertexOutOfRange = errors.New("pace: vertex id out of declared range")
)

// Edge is a parsed edge: A index in [0, n0), B index in [0, n1), both
// already shifted to 0-indexed.
type Edge struct {
	A int
	B int
}

// Instance is the raw parsed instance, before twin/isolated reduction.
type Instance struct {
	N0    int
	N1    int
	Edges []Edge
}

// ParseInstance reads a PACE-style instance: an optional run of comment
// lines starting with "c", then either a problem line "p ocr n0 n1 m" or a
// bare "n0 n1" size line, then m edge lines "u v" with u in [1, n0] and v in
// (n0, n0+n1], interleaved with further comment/blank lines.
func ParseInstance(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n0, n1, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, scanner.Text())
		}
		u, err1 := strconv.Atoi(fields[0])
		v, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, scanner.Text())
		}

		a := u - 1
		b := v - 1 - n0
		if a < 0 || a >= n0 || b < 0 || b >= n1 {
			return nil, fmt.Errorf("%w: %q", ErrVertexOutOfRange, scanner.Text())
		}
		edges = append(edges, Edge{A: a, B: b})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Instance{N0: n0, N1: n1, Edges: edges}, nil
}

// readHeader skips comment/blank lines and parses the first content line as
// either a PACE problem line or a bare size line.
func readHeader(scanner *bufio.Scanner) (n0, n1 int, err error) {
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || fields[0] == "c" {
			continue
		}
		if fields[0] == "p" {
			if len(fields) < 5 {
				return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
			}
			n0, err1 := strconv.Atoi(fields[2])
			n1, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil {
				return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
			}

			return n0, n1, nil
		}
		if len(fields) < 2 {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
		}
		n0, err1 := strconv.Atoi(fields[0])
		n1, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
		}

		return n0, n1, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}

	return 0, 0, ErrMissingHeader
}
