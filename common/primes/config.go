package primes

import (
	"github.com/eulerlab/numtheory/common"
)

// Logger is the subset of the go-log event logger the engine writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// config is used to store the tunables of an Engine
type config struct {
	policy GrowthPolicy
	logger Logger
}

func makeconfig() *config {
	return &config{
		policy: Doubling,
		logger: common.Logger,
	}
}

// Option configures an Engine. Options are passed to New.
type Option func(*config)

// WithGrowthPolicy sets the policy used to pick how far the cache is extended
// when a query needs primes beyond the validated bound. A nil policy keeps the
// default (Doubling).
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithLogger replaces the module logger.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
