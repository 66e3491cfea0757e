// Package saga runs a sequence of steps and, when one fails, invokes the
// compensations of the steps that already succeeded in reverse order.
package saga

import (
	"context"
	"log/slog"

	"salon-booking/internal/pkg/errs"
)

// StepResult carries a step's value and the payload its compensation needs.
// Undo must be self-contained: compensations never re-read global state.
type StepResult[T any] struct {
	Value T
	Undo  any
}

type Step[T any] struct {
	Name   string
	Invoke func(ctx context.Context) (StepResult[T], error)
	// Compensate is nil for steps that change nothing or cannot be undone.
	Compensate func(ctx context.Context, undo any) error
}

type Observer interface {
	StepCompensated(workflow, step string, err error)
}

type completed struct {
	name       string
	undo       any
	compensate func(ctx context.Context, undo any) error
}

// Workflow records completed steps of one saga invocation. It is not safe for
// concurrent use; steps of one saga run strictly in sequence.
type Workflow struct {
	name     string
	logger   *slog.Logger
	observer Observer
	done     []completed
}

type Option func(*Workflow)

func WithObserver(o Observer) Option {
	return func(w *Workflow) { w.observer = o }
}

func New(name string, logger *slog.Logger, opts ...Option) *Workflow {
	w := &Workflow{name: name, logger: logger.With("workflow", name)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run invokes step. On failure it compensates every previously completed step
// and returns the step error with any compensation errors attached.
func Run[T any](ctx context.Context, w *Workflow, step Step[T]) (T, error) {
	var zero T

	res, err := step.Invoke(ctx)
	if err != nil {
		w.logger.Warn("saga step failed", "step", step.Name, "error", err.Error())
		return zero, w.Abort(ctx, errs.Wrapf(err, "%s: %s", w.name, step.Name))
	}
	w.logger.Debug("saga step completed", "step", step.Name)

	if step.Compensate != nil {
		w.done = append(w.done, completed{name: step.Name, undo: res.Undo, compensate: step.Compensate})
	}
	return res.Value, nil
}

// Abort compensates all completed steps, newest first, and returns cause.
// Compensations run even if ctx is already cancelled.
func (w *Workflow) Abort(ctx context.Context, cause error) error {
	ctx = context.WithoutCancel(ctx)
	for i := len(w.done) - 1; i >= 0; i-- {
		c := w.done[i]
		err := c.compensate(ctx, c.undo)
		if w.observer != nil {
			w.observer.StepCompensated(w.name, c.name, err)
		}
		if err != nil {
			w.logger.Error("saga compensation failed", "step", c.name, "error", err.Error())
			cause = errs.WithSecondary(cause, errs.Wrapf(err, "compensate %s", c.name))
			continue
		}
		w.logger.Info("saga step compensated", "step", c.name)
	}
	w.done = nil
	return cause
}

// Completed lists the names of steps that would be compensated on failure.
func (w *Workflow) Completed() []string {
	names := make([]string, len(w.done))
	for i, c := range w.done {
		names[i] = c.name
	}
	return names
}
