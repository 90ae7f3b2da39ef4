// Package site hosts the build pipeline: an explicit, fixed-order sequence of
// stages operating on a shared BuildState. There is no runtime hook discovery;
// the caller constructs the stages and runs them.
package site

import (
	"context"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/docmodel"
	"git.home.luguber.info/inful/docsmith/internal/metrics"
	"git.home.luguber.info/inful/docsmith/internal/nav"
)

// StageName identifies a pipeline stage.
type StageName string

const (
	StagePrepare StageName = "prepare"
	StageCollect StageName = "collect"
	StageRender  StageName = "render"
	StageNav     StageName = "nav"
	StageRename  StageName = "rename"
	StageWrite   StageName = "write"
)

// StageFn is a single pipeline step. A returned error aborts the build.
type StageFn func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage name with its implementation.
type StageDef struct {
	Name StageName
	Fn   StageFn
}

// DefaultStages returns the build pipeline in its fixed order.
func DefaultStages() []StageDef {
	return []StageDef{
		{StagePrepare, stagePrepare},
		{StageCollect, stageCollect},
		{StageRender, stageRender},
		{StageNav, stageNav},
		{StageRename, stageRename},
		{StageWrite, stageWrite},
	}
}

// BuildState carries everything the stages read and write.
type BuildState struct {
	Cfg       *config.Config
	OutputDir string
	BuildID   string
	StartedAt time.Time

	Artifacts []*docmodel.Artifact
	Nav       []nav.Node

	Recorder metrics.Recorder
	Report   *Report
}

// Report accumulates per-stage timing for the build manifest.
type Report struct {
	StageDurations map[StageName]time.Duration
	Outcome        string
}

// NewBuildState prepares a state for one build run.
func NewBuildState(cfg *config.Config, outputDir string, rec metrics.Recorder) *BuildState {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &BuildState{
		Cfg:       cfg,
		OutputDir: outputDir,
		BuildID:   uuid.NewString(),
		StartedAt: time.Now(),
		Recorder:  rec,
		Report:    &Report{StageDurations: map[StageName]time.Duration{}},
	}
}
