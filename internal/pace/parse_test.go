package pace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInstance_BareHeader(t *testing.T) {
	input := "2 2\n1 3\n2 4\n"
	inst, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, inst.N0)
	require.Equal(t, 2, inst.N1)
	require.Equal(t, []Edge{{A: 0, B: 0}, {A: 1, B: 1}}, inst.Edges)
}

func TestParseInstance_PaceProblemLine(t *testing.T) {
	input := "c a comment\np ocr 2 2 2\n1 4\n2 3\n"
	inst, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, inst.N0)
	require.Equal(t, 2, inst.N1)
	require.Equal(t, []Edge{{A: 0, B: 1}, {A: 1, B: 0}}, inst.Edges)
}

func TestParseInstance_NoEdgesIsolatedOnly(t *testing.T) {
	input := "1 3\n"
	inst, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, inst.N0)
	require.Equal(t, 3, inst.N1)
	require.Empty(t, inst.Edges)
}

func TestParseInstance_RejectsOutOfRangeVertex(t *testing.T) {
	input := "2 2\n5 3\n"
	_, err := ParseInstance(strings.NewReader(input))
	require.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestParseInstance_RejectsMalformedEdge(t *testing.T) {
	input := "2 2\n1 2 3\n"
	_, err := ParseInstance(strings.NewReader(input))
	require.ErrorIs(t, err, ErrMalformedEdge)
}

func TestParseInstance_RejectsMissingHeader(t *testing.T) {
	_, err := ParseInstance(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingHeader)
}
