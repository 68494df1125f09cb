package readiness

import (
	"context"

	"objectfs/core/objectclient"

	"go.uber.org/zap"
)

// Observer is notified of every readiness decision.
type Observer interface {
	Observe(d Decision)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(d Decision)

func (f ObserverFunc) Observe(d Decision) { f(d) }

// Checker evaluates readiness and reports each decision to its observers.
// Observers cannot change the result.
type Checker struct {
	observers []Observer
}

// NewChecker creates a Checker. Nil observers are skipped.
func NewChecker(observers ...Observer) *Checker {
	c := &Checker{}
	for _, o := range observers {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
	return c
}

// Check evaluates readiness and returns the full decision.
func (c *Checker) Check(ctx context.Context, client objectclient.ObjectClient, cfg objectclient.Config) Decision {
	d := Evaluate(ctx, client, cfg)
	for _, o := range c.observers {
		o.Observe(d)
	}
	return d
}

// IsReady reports whether the client can be used for storage.
func (c *Checker) IsReady(ctx context.Context, client objectclient.ObjectClient, cfg objectclient.Config) bool {
	return c.Check(ctx, client, cfg).Ready
}

// LogObserver logs negative decisions at debug level.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates a LogObserver writing to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Observe(d Decision) {
	if d.Ready {
		return
	}
	o.logger.Debug("Object client is not ready",
		zap.String("step", string(d.Step)),
		zap.String("reason", d.Reason),
	)
}
