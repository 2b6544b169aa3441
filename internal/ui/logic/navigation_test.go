package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorKeepsSelectionVisible(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 20)

	sel, off := n.Move(1)
	assert.Equal(t, 1, sel)
	assert.Equal(t, 0, off)

	sel, off = n.SetSelectedIndex(7)
	assert.Equal(t, 7, sel)
	assert.Equal(t, 3, off)

	sel, off = n.SetSelectedIndex(2)
	assert.Equal(t, 2, sel)
	assert.Equal(t, 2, off)
}

func TestNavigatorClampsToBounds(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 8)

	sel, off := n.Move(-3)
	assert.Equal(t, 0, sel)
	assert.Equal(t, 0, off)

	sel, off = n.Move(100)
	assert.Equal(t, 7, sel)
	assert.Equal(t, 3, off)
	assert.True(t, n.AtLastRow())
	assert.False(t, n.HasMoreBelow())
	assert.True(t, n.HasMoreAbove())
}

func TestNavigatorEmptyList(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 0)

	sel, off := n.Move(1)
	assert.Equal(t, 0, sel)
	assert.Equal(t, 0, off)
	assert.False(t, n.AtLastRow())
}

func TestNavigatorPageSize(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{height: 10, want: 8},
		{height: 3, want: 1},
		{height: 1, want: 1},
	}
	for _, tt := range tests {
		n := NewNavigator()
		n.UpdateState(0, 0, tt.height, 50)
		assert.Equal(t, tt.want, n.PageSize(), "height %d", tt.height)
	}
}
