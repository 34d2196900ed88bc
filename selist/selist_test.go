package selist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(t *testing.T, opts ...Option) *List[int] {
	t.Helper()
	l, err := New[int](opts...)
	require.NoError(t, err)
	return l
}

func requireValues(t *testing.T, l *List[int], want []int) {
	t.Helper()
	require.NoError(t, l.CheckInvariants())
	require.Equal(t, len(want), l.Size())
	for i, w := range want {
		got, ok := l.Get(i)
		require.True(t, ok, "Get(%d)", i)
		require.Equal(t, w, got, "Get(%d)", i)
	}
}

func TestNew(t *testing.T) {
	l := newList(t)
	assert.Equal(t, DefaultBlockSize, l.BlockSize())
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.Nodes())

	l = newList(t, WithBlockSize(9))
	assert.Equal(t, 9, l.BlockSize())

	_, err := New[int](WithBlockSize(0))
	require.ErrorIs(t, err, ErrBlockSizeInvalid)
	_, err = New[int](WithBlockSize(-3))
	require.ErrorIs(t, err, ErrBlockSizeInvalid)
}

// TestScenarioA walks the concrete mixed push/add/remove example
func TestScenarioA(t *testing.T) {
	l := newList(t)
	for _, x := range []int{1, 2, 3, 4} {
		l.PushBack(x)
	}
	requireValues(t, l, []int{1, 2, 3, 4})

	require.True(t, l.Add(0, -1))
	require.True(t, l.Add(0, -2))
	requireValues(t, l, []int{-2, -1, 1, 2, 3, 4})

	require.True(t, l.Add(2, 0))
	requireValues(t, l, []int{-2, -1, 0, 1, 2, 3, 4})

	got, ok := l.Remove(2)
	require.True(t, ok)
	assert.Equal(t, 0, got)
	requireValues(t, l, []int{-2, -1, 1, 2, 3, 4})
}

// TestScenarioB fills a block size 4 list by repeatedly inserting at the
// front, which forces spreads, then drains it from the front.
func TestScenarioB(t *testing.T) {
	l := newList(t, WithBlockSize(4))

	spreads := Spreads()
	for i := 0; i < 36; i++ {
		require.True(t, l.Add(0, 35-i))
		require.NoError(t, l.CheckInvariants())
	}
	assert.Greater(t, Spreads(), spreads)

	want := make([]int, 36)
	for i := range want {
		want[i] = i
	}
	requireValues(t, l, want)

	gathers := Gathers()
	for i := 0; i < 36; i++ {
		got, ok := l.Remove(0)
		require.True(t, ok)
		require.Equal(t, i, got)
		require.NoError(t, l.CheckInvariants())
	}
	assert.Greater(t, Gathers(), gathers)

	_, ok := l.Remove(0)
	assert.False(t, ok)
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.Nodes())
}

func TestPushBackGetRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 16, 17, 100, 1000} {
		for _, b := range []int{1, 2, 4, 7} {
			l := newList(t, WithBlockSize(b))
			for i := 0; i < n; i++ {
				l.PushBack(i)
			}
			require.NoError(t, l.CheckInvariants())
			require.Equal(t, n, l.Size())
			for i := 0; i < n; i++ {
				got, ok := l.Get(i)
				require.True(t, ok)
				require.Equal(t, i, got, "n=%d b=%d", n, b)
			}
			// push_back only ever fills the tail, so the chain is dense
			require.Equal(t, (n+b-1)/b, l.Nodes())
		}
	}
}

func TestOutOfRange(t *testing.T) {
	l := newList(t)
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}

	for _, idx := range []int{-1, 10, 11, 1 << 20} {
		_, ok := l.Get(idx)
		assert.False(t, ok, "Get(%d)", idx)

		_, ok = l.Set(idx, 99)
		assert.False(t, ok, "Set(%d)", idx)

		called := false
		assert.False(t, l.Update(idx, func(*int) { called = true }))
		assert.False(t, called)

		_, ok = l.Remove(idx)
		assert.False(t, ok, "Remove(%d)", idx)
	}
	for _, idx := range []int{-1, 11, 12} {
		assert.False(t, l.Add(idx, 99), "Add(%d)", idx)
	}

	requireValues(t, l, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	empty := newList(t)
	_, ok := empty.Get(0)
	assert.False(t, ok)
	_, ok = empty.Remove(0)
	assert.False(t, ok)
	assert.False(t, empty.Add(1, 1))
}

func TestBoundaryInserts(t *testing.T) {
	tests := []struct {
		name string
		pos  func(size int) int
	}{
		{"front", func(int) int { return 0 }},
		{"back", func(size int) int { return size }},
		{"middle", func(size int) int { return size / 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newList(t, WithBlockSize(3))
			var want []int
			for x := 0; x < 50; x++ {
				idx := tt.pos(l.Size())
				require.True(t, l.Add(idx, x))

				want = append(want, 0)
				copy(want[idx+1:], want[idx:])
				want[idx] = x
			}
			requireValues(t, l, want)
		})
	}
}

func TestSetAndUpdate(t *testing.T) {
	l := newList(t, WithBlockSize(2))
	for i := 0; i < 7; i++ {
		l.PushBack(i)
	}

	old, ok := l.Set(5, 50)
	require.True(t, ok)
	assert.Equal(t, 5, old)

	require.True(t, l.Update(1, func(x *int) { *x += 10 }))
	requireValues(t, l, []int{0, 11, 2, 3, 4, 50, 6})
}

func TestAddAtSizeIsPushBack(t *testing.T) {
	l := newList(t, WithBlockSize(2))
	for i := 0; i < 5; i++ {
		require.True(t, l.Add(l.Size(), i))
	}
	requireValues(t, l, []int{0, 1, 2, 3, 4})
	assert.Equal(t, 3, l.Nodes())
}

func TestRemoveToEmptyThenReuse(t *testing.T) {
	l := newList(t, WithBlockSize(3))
	for i := 0; i < 10; i++ {
		l.PushBack(i)
	}
	for l.Size() > 0 {
		_, ok := l.Remove(l.Size() / 2)
		require.True(t, ok)
		require.NoError(t, l.CheckInvariants())
	}
	assert.Equal(t, 0, l.Nodes())
	assert.Equal(t, noNode, l.head)
	assert.Equal(t, noNode, l.tail)

	l.PushBack(42)
	requireValues(t, l, []int{42})
}
