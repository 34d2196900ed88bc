package selisttesting

import "fmt"

type OpKind int

const (
	OpPushBack OpKind = iota
	OpAdd
	OpRemove
	OpSet
	OpGet
)

func (k OpKind) String() string {
	switch k {
	case OpPushBack:
		return "push_back"
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpSet:
		return "set"
	case OpGet:
		return "get"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one step of an operation trace over int elements
type Op struct {
	Kind  OpKind
	Index int
	Value int
}

func (op Op) String() string {
	switch op.Kind {
	case OpPushBack:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Value)
	case OpRemove, OpGet:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Index)
	}
	return fmt.Sprintf("%v(%d, %d)", op.Kind, op.Index, op.Value)
}

// Apply runs op against s. For Add and PushBack the result is (Value, ok)
func (op Op) Apply(s Sequence[int]) (int, bool) {
	switch op.Kind {
	case OpPushBack:
		s.PushBack(op.Value)
		return op.Value, true
	case OpAdd:
		return op.Value, s.Add(op.Index, op.Value)
	case OpRemove:
		return s.Remove(op.Index)
	case OpSet:
		return s.Set(op.Index, op.Value)
	case OpGet:
		return s.Get(op.Index)
	}
	panic(fmt.Sprintf("unknown op kind %d", op.Kind))
}

// RandomOps generates a trace of count operations for a sequence currently
// holding size elements. addPercent biases the trace between growth (Add, PushBack) and
// shrinkage (Remove); Set and Get are mixed in throughout. Roughly one index
// in ten falls just outside the valid range so absent results are exercised.
func (c *TestContext) RandomOps(size, count, addPercent int) []Op {
	ops := make([]Op, 0, count)
	for i := 0; i < count; i++ {
		op := Op{Value: c.Rand.Int()}

		roll := c.Rand.Intn(100)
		switch {
		case roll < 10:
			op.Kind = OpSet
		case roll < 20:
			op.Kind = OpGet
		default:
			if c.Rand.Intn(100) < addPercent {
				op.Kind = OpAdd
				if c.Rand.Intn(4) == 0 {
					op.Kind = OpPushBack
				}
			} else {
				op.Kind = OpRemove
			}
		}

		limit := size
		if op.Kind == OpAdd {
			limit = size + 1
		}
		op.Index = c.index(limit)

		switch op.Kind {
		case OpPushBack:
			size++
		case OpAdd:
			if op.Index >= 0 && op.Index < limit {
				size++
			}
		case OpRemove:
			if op.Index >= 0 && op.Index < limit {
				size--
			}
		}
		ops = append(ops, op)
	}
	return ops
}

// index picks a position in [0, limit), or now and then one of -1, limit and
// limit+1
func (c *TestContext) index(limit int) int {
	if limit > 0 && c.Rand.Intn(10) != 0 {
		return c.Rand.Intn(limit)
	}
	switch c.Rand.Intn(3) {
	case 0:
		return -1
	case 1:
		return limit
	}
	return limit + 1
}
