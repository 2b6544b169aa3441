package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pixels/internal/domain"
)

func images(ids ...int) []domain.Image {
	out := make([]domain.Image, len(ids))
	for i, id := range ids {
		out[i] = domain.Image{ID: id}
	}
	return out
}

func ids(list []domain.Image) []int {
	out := make([]int, len(list))
	for i, img := range list {
		out[i] = img.ID
	}
	return out
}

func TestAccumulatorReplaceDiscardsPrevious(t *testing.T) {
	var a Accumulator
	a.Apply(images(1, 2, 3), domain.ModeAppend)

	a.Apply(images(9), domain.ModeReplace)
	require.Equal(t, []int{9}, ids(a.Items()))

	a.Apply(nil, domain.ModeReplace)
	require.Equal(t, 0, a.Len())
}

func TestAccumulatorAppendKeepsOrderAndDuplicates(t *testing.T) {
	var a Accumulator
	a.Apply(images(1, 2), domain.ModeReplace)
	a.Apply(images(2, 3), domain.ModeAppend)

	require.Equal(t, []int{1, 2, 2, 3}, ids(a.Items()))

	a.Apply(nil, domain.ModeAppend)
	require.Equal(t, 4, a.Len())
}

func TestAccumulatorDoesNotAliasInput(t *testing.T) {
	var a Accumulator
	in := images(1, 2)
	a.Apply(in, domain.ModeReplace)
	in[0].ID = 100

	out := a.Items()
	require.Equal(t, 1, out[0].ID)
	out[1].ID = 200

	got, ok := a.At(1)
	require.True(t, ok)
	require.Equal(t, 2, got.ID)

	_, ok = a.At(2)
	require.False(t, ok)
}
