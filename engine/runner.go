package engine

import "golang.org/x/sync/errgroup"

// Runner schedules worker tasks. The default implementation runs each task
// on its own goroutine via errgroup; alternative Runners let callers control
// scheduling or inject dispatch failures.
//
// Go must either schedule the task or return an error without having run any
// part of it, so that a failed dispatch leaves no partial side effects.
type Runner interface {
	Go(task func() error) error
	Wait() error
}

type groupRunner struct {
	g errgroup.Group
}

// NewGroupRunner returns the default errgroup-backed Runner. limit bounds
// the number of concurrently executing tasks; non-positive means unbounded.
func NewGroupRunner(limit int) Runner {
	r := &groupRunner{}
	if limit > 0 {
		r.g.SetLimit(limit)
	}
	return r
}

func (r *groupRunner) Go(task func() error) error {
	r.g.Go(task)
	return nil
}

func (r *groupRunner) Wait() error {
	return r.g.Wait()
}
