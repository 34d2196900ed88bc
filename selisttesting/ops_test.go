package selisttesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomOpsDeterministic(t *testing.T) {
	a := NewTestContext(t, TestConfig{StartTimeMS: 1234, TestLabelPrefix: "ops-a"})
	b := NewTestContext(t, TestConfig{StartTimeMS: 1234, TestLabelPrefix: "ops-b"})

	assert.Equal(t, a.RandomOps(0, 500, 60), b.RandomOps(0, 500, 60))
}

func TestRandomOpsTracksSize(t *testing.T) {
	tc := NewTestContext(t, TestConfig{StartTimeMS: 99})

	m := NewModel[int]()
	absent := 0
	for _, op := range tc.RandomOps(0, 2000, 70) {
		if _, ok := op.Apply(m); !ok {
			absent++
		}
	}
	// the generator's view of the size stays in step with the model, so
	// only the deliberately out of range picks come back absent
	assert.Greater(t, m.Size(), 0)
	assert.Greater(t, absent, 0)
	assert.Less(t, absent, 600)
}

func TestNewTestContextLabel(t *testing.T) {
	tc := NewTestContext(t, TestConfig{})
	require.NotNil(t, tc.Rand)
	assert.Regexp(t, `^selist-[0-9a-f]{8}$`, tc.Label)
	assert.Equal(t, tc.Log, tc.GetLog())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "add(1, 2)", Op{Kind: OpAdd, Index: 1, Value: 2}.String())
	assert.Equal(t, "remove(3)", Op{Kind: OpRemove, Index: 3}.String())
	assert.Equal(t, "push_back(7)", Op{Kind: OpPushBack, Value: 7}.String())
	assert.Equal(t, "OpKind(9)", OpKind(9).String())
}
