package gallery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginatorLatch(t *testing.T) {
	p := NewPaginator()
	require.Equal(t, 1, p.Page())

	page, ok := p.AtBottom()
	require.True(t, ok)
	require.Equal(t, 2, page)

	for i := 0; i < 5; i++ {
		_, ok = p.AtBottom()
		require.False(t, ok, "latched bottom must not fire again")
	}
	require.Equal(t, 2, p.Page())

	p.AwayFromBottom()
	require.False(t, p.EndReached())

	page, ok = p.AtBottom()
	require.True(t, ok)
	require.Equal(t, 3, page)
}

func TestPaginatorReset(t *testing.T) {
	p := NewPaginator()
	p.AtBottom()
	p.AwayFromBottom()
	p.AtBottom()

	p.Reset()
	require.Equal(t, 1, p.Page())
	require.False(t, p.EndReached())

	page, ok := p.AtBottom()
	require.True(t, ok)
	require.Equal(t, 2, page)
}
