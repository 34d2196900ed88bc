package selisttesting

import (
	"math/rand"
	"testing"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

type TestContext struct {
	Log   logger.Logger
	Rand  *rand.Rand
	Label string
	T     *testing.T
}

type TestConfig struct {
	// We seed the RNG of the provided StartTimeMS. It is normal to force it to
	// some fixed value so that the generated traces are the same from run to
	// run. Zero means use the current time, the seed is logged either way.
	StartTimeMS     int64
	TestLabelPrefix string // can be "", a random label is generated
	LogLevel        string // can be "", defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:     t,
		Label: cfg.TestLabelPrefix,
	}
	if c.Label == "" {
		c.Label = "selist-" + uuid.NewString()[:8]
	}

	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)
	c.Log = logger.Sugar.WithServiceName(c.Label)

	seed := cfg.StartTimeMS
	if seed == 0 {
		seed = time.Now().UnixMilli()
	}
	c.Rand = rand.New(rand.NewSource(seed))
	c.Log.Infof("%s: rng seed %d", c.Label, seed)

	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }
