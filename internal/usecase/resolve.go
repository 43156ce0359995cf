package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"gototest/internal/adapter/fs"
	"gototest/internal/adapter/locator"
	"gototest/internal/adapter/naming"
	"gototest/internal/adapter/pattern"
	"gototest/internal/adapter/similarity"
	"gototest/internal/domain"
	"gototest/internal/port"
)

// ResolveConfig is the per-session configuration of a ResolveUseCase.
type ResolveConfig struct {
	// SpecFilePatterns are templates such as "{f}.test{e}", in priority order.
	SpecFilePatterns []string

	// Excludes are doublestar globs, relative to the workspace root, of files
	// for which jumping is a no-op.
	Excludes []string
}

// ResolveUseCase finds the counterpart of the active file and opens it.
type ResolveUseCase struct {
	patterns      []*pattern.Pattern
	filter        port.PathFilter
	locator       *locator.Locator
	disambiguator *similarity.Disambiguator
	chooser       port.Chooser
	opener        port.FileOpener
	recorder      port.JumpRecorder
	logger        *slog.Logger
}

// NewResolveUseCase creates a new resolve use case.
func NewResolveUseCase(
	cfg ResolveConfig,
	locator *locator.Locator,
	disambiguator *similarity.Disambiguator,
	chooser port.Chooser,
	opener port.FileOpener,
	logger *slog.Logger,
) *ResolveUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResolveUseCase{
		patterns:      pattern.CompileAll(cfg.SpecFilePatterns),
		filter:        fs.NewFilter(cfg.Excludes),
		locator:       locator,
		disambiguator: disambiguator,
		chooser:       chooser,
		opener:        opener,
		logger:        logger,
	}
}

// SetRecorder makes Run record every completed jump. nil disables recording.
func (u *ResolveUseCase) SetRecorder(recorder port.JumpRecorder) {
	u.recorder = recorder
}

// Resolve finds the counterpart candidates of openedPath without asking anyone.
// It returns a *domain.NotFoundError when no candidate exists.
func (u *ResolveUseCase) Resolve(openedPath string) (domain.Resolution, error) {
	openedName := filepath.Base(openedPath)
	res := domain.Resolution{Opened: openedPath}

	if p := pattern.Classify(u.patterns, openedName); p != nil {
		res.Direction = domain.ToCode
		res.Target = naming.RecoverCodeName(openedName, p)
		res.Candidates = u.locator.Locate(res.Target, openedPath)

		u.logger.Debug("spec file detected",
			slog.String("file", openedName),
			slog.String("pattern", p.Template()),
			slog.String("code_file", res.Target),
			slog.Int("candidates", len(res.Candidates)),
		)

		if len(res.Candidates) == 0 {
			return res, &domain.NotFoundError{Filename: res.Target, Direction: domain.ToCode}
		}
		res.Options = u.disambiguator.Disambiguate(openedPath, res.Candidates)
		return res, nil
	}

	res.Direction = domain.ToSpec
	for _, p := range u.patterns {
		target := naming.DeriveSpecName(openedName, p)
		candidates := u.locator.Locate(target, openedPath)

		u.logger.Debug("trying spec pattern",
			slog.String("pattern", p.Template()),
			slog.String("spec_file", target),
			slog.Int("candidates", len(candidates)),
		)

		if len(candidates) == 0 {
			continue
		}
		res.Target = target
		res.Candidates = candidates
		res.Options = u.disambiguator.Disambiguate(openedPath, candidates)
		return res, nil
	}

	return res, &domain.NotFoundError{Filename: openedName, Direction: domain.ToSpec}
}

// Run jumps from the workspace's active file to its counterpart and returns
// the opened path. It returns "" and no error when there is nothing to do:
// no workspace, no active file, an excluded file, or a cancelled choice.
func (u *ResolveUseCase) Run(ctx context.Context, ws port.Workspace) (string, error) {
	root := ws.Root()
	if root == "" {
		u.logger.Debug("no workspace, nothing to do")
		return "", nil
	}
	active := ws.ActiveFile()
	if active == "" {
		u.logger.Debug("no active file, nothing to do")
		return "", nil
	}
	if u.excluded(root, active) {
		u.logger.Debug("active file is excluded", slog.String("file", active))
		return "", nil
	}

	res, err := u.Resolve(active)
	if err != nil {
		return "", err
	}

	target := res.Options[0]
	if res.Ambiguous() {
		u.logger.Debug("near tie between candidates", slog.Any("options", res.Options))

		choice, ok, err := u.chooser.Choose(ctx, res.Options)
		if err != nil {
			return "", fmt.Errorf("failed to choose file: %w", err)
		}
		if !ok {
			u.logger.Info("selection cancelled", slog.String("file", active))
			return "", nil
		}
		target = choice
	}

	if err := u.opener.Open(ctx, target); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", target, err)
	}
	u.record(active, target, res.Direction)

	return target, nil
}

func (u *ResolveUseCase) excluded(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return u.filter.Excluded(rel)
}

func (u *ResolveUseCase) record(from, to string, dir domain.Direction) {
	if u.recorder == nil {
		return
	}
	err := u.recorder.Record(domain.Jump{
		From:      from,
		To:        to,
		Direction: dir,
		At:        time.Now(),
	})
	if err != nil {
		u.logger.Warn("failed to record jump", slog.String("error", err.Error()))
	}
}
