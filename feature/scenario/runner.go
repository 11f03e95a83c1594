package scenario

import (
	"context"
	"fmt"

	"collection-adapter/core/host"
	"collection-adapter/core/reconcile"
	"collection-adapter/feature/session"
	"collection-adapter/feature/session/models"

	"go.uber.org/zap"
)

// StepResult is the state after one step.
type StepResult struct {
	Index    int                `json:"index"`
	Step     string             `json:"step"`
	Ops      []host.Op          `json:"ops"`
	Reports  []reconcile.Report `json:"reports"`
	Snapshot models.Snapshot    `json:"snapshot"`
	Error    string             `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Name  string       `json:"name"`
	Steps []StepResult `json:"steps"`
}

// Failed reports whether a step returned an error.
func (r *Result) Failed() bool {
	return len(r.Steps) > 0 && r.Steps[len(r.Steps)-1].Error != ""
}

// Runner replays scenarios against fresh sessions.
type Runner struct {
	settings reconcile.Settings
	logger   *zap.Logger
}

// NewRunner creates a runner whose sessions start from settings.
func NewRunner(settings reconcile.Settings, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{settings: settings, logger: logger}
}

// Run replays every step in order. A failing step ends the run; its result is
// included with the error message and the error is returned alongside.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	settings := r.settings
	if sc.StashSize != nil {
		settings.StashSize = *sc.StashSize
	}
	if sc.StartOffset != nil {
		settings.StartOffset = *sc.StartOffset
	}
	if sc.EndOffset != nil {
		settings.EndOffset = *sc.EndOffset
	}

	sess, err := session.New(sc.Name, session.Config{
		Settings:   settings,
		Capacities: sc.Capacities,
		Context:    ctx,
		Logger:     r.logger,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Name: sc.Name, Steps: make([]StepResult, 0, len(sc.Steps))}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		stepErr := apply(sess, step)
		sr := StepResult{
			Index:    i + 1,
			Step:     step.String(),
			Ops:      sess.DrainJournal(),
			Reports:  sess.DrainReports(),
			Snapshot: sess.Snapshot(),
		}
		if stepErr != nil {
			sr.Error = stepErr.Error()
			res.Steps = append(res.Steps, sr)
			r.logger.Warn("Scenario step failed",
				zap.String("scenario", sc.Name),
				zap.Int("step", i+1),
				zap.Error(stepErr),
			)
			return res, fmt.Errorf("step %d (%s): %w", i+1, step, stepErr)
		}
		res.Steps = append(res.Steps, sr)
	}

	r.logger.Debug("Scenario finished", zap.String("scenario", sc.Name), zap.Int("steps", len(res.Steps)))
	return res, nil
}

func apply(sess *session.Session, step Step) error {
	switch step.Action {
	case ActionSet:
		return sess.SetItems(step.Items)
	case ActionAttach:
		return sess.Attach()
	case ActionDetach:
		return sess.Detach()
	case ActionRefresh:
		return sess.Refresh()
	case ActionCapacity:
		sess.SetCapacity(step.Type, step.Max)
		return nil
	case ActionClearPool:
		sess.ClearPool()
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", ErrInvalidScenario, step.Action)
}
