package site

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/docsmith/internal/logfields"
	"git.home.luguber.info/inful/docsmith/internal/metrics"
)

// RunStages executes stages in order, recording timing and stopping on the
// first error. Errors are not retried; a failed stage aborts the build rather
// than producing a partial site.
func RunStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			bs.Recorder.IncStageResult(string(st.Name), metrics.ResultCanceled)
			bs.Report.Outcome = "canceled"
			return fmt.Errorf("stage %s canceled: %w", st.Name, ctx.Err())
		default:
		}

		slog.Debug("Stage starting", logfields.Stage(string(st.Name)))
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		bs.Report.StageDurations[st.Name] = dur
		bs.Recorder.ObserveStageDuration(string(st.Name), dur)

		if err != nil {
			bs.Recorder.IncStageResult(string(st.Name), metrics.ResultFatal)
			bs.Report.Outcome = "failed"
			slog.Error("Stage failed", logfields.Stage(string(st.Name)), logfields.Error(err))
			return fmt.Errorf("stage %s: %w", st.Name, err)
		}
		bs.Recorder.IncStageResult(string(st.Name), metrics.ResultSuccess)
		slog.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())))
	}
	bs.Report.Outcome = "success"
	return nil
}

// Build runs the default pipeline and records the final outcome.
func Build(ctx context.Context, bs *BuildState) error {
	err := RunStages(ctx, bs, DefaultStages())
	bs.Recorder.ObserveBuildDuration(time.Since(bs.StartedAt))
	bs.Recorder.IncBuildOutcome(bs.Report.Outcome)
	return err
}
