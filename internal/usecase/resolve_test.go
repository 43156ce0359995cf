package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gototest/internal/adapter/fs"
	"gototest/internal/adapter/locator"
	"gototest/internal/adapter/similarity"
	"gototest/internal/domain"
)

type fakeChecker map[string]bool

func (c fakeChecker) Exists(path string) bool {
	return c[path]
}

type fakeWorkspace struct {
	root   string
	active string
}

func (w fakeWorkspace) Root() string       { return w.root }
func (w fakeWorkspace) ActiveFile() string { return w.active }

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(_ context.Context, path string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, path)
	return nil
}

type fakeChooser struct {
	pick    int
	cancel  bool
	offered [][]string
}

func (c *fakeChooser) Choose(_ context.Context, options []string) (string, bool, error) {
	c.offered = append(c.offered, options)
	if c.cancel {
		return "", false, nil
	}
	return options[c.pick], true, nil
}

type fakeRecorder struct {
	jumps []domain.Jump
	err   error
}

func (r *fakeRecorder) Record(j domain.Jump) error {
	r.jumps = append(r.jumps, j)
	return r.err
}

var defaultPatterns = []string{"{f}.test{e}", "{f}.spec{e}"}

func abs(parts ...string) string {
	return filepath.Join(append([]string{string(filepath.Separator)}, parts...)...)
}

type harness struct {
	uc      *ResolveUseCase
	opener  *fakeOpener
	chooser *fakeChooser
}

func newHarness(cfg ResolveConfig, existing fakeChecker, scorer similarity.Scorer) *harness {
	h := &harness{
		opener:  &fakeOpener{},
		chooser: &fakeChooser{},
	}
	h.uc = NewResolveUseCase(
		cfg,
		locator.NewLocator(existing),
		similarity.NewDisambiguatorWithScorer(similarity.DefaultTolerance, scorer),
		h.chooser,
		h.opener,
		nil,
	)
	return h
}

func TestRun_CodeToSpecInTestsDir(t *testing.T) {
	spec := abs("repo", "src", "__tests__", "foo.test.ts")
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{spec: true}, nil)

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != spec {
		t.Errorf("expected %s, got %s", spec, opened)
	}
	if len(h.opener.opened) != 1 || h.opener.opened[0] != spec {
		t.Errorf("expected opener to receive %s, got %v", spec, h.opener.opened)
	}
	if len(h.chooser.offered) != 0 {
		t.Errorf("expected no prompt, got %v", h.chooser.offered)
	}
}

func TestRun_SpecToCodeOneLevelUp(t *testing.T) {
	code := abs("repo", "src", "bar.js")
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{code: true}, nil)

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{
		root:   abs("repo"),
		active: abs("repo", "src", "__tests__", "bar.spec.js"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != code {
		t.Errorf("expected %s, got %s", code, opened)
	}
}

func TestResolve_SpecToCodeRecoversName(t *testing.T) {
	code := abs("repo", "bar.js")
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{code: true}, nil)

	res, err := h.uc.Resolve(abs("repo", "src", "bar.spec.js"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Direction != domain.ToCode {
		t.Errorf("expected ToCode, got %v", res.Direction)
	}
	if res.Target != "bar.js" {
		t.Errorf("expected target bar.js, got %s", res.Target)
	}
	if len(res.Options) != 1 || res.Options[0] != code {
		t.Errorf("expected [%s], got %v", code, res.Options)
	}
}

func TestResolve_PatternPriority(t *testing.T) {
	testSpec := abs("repo", "src", "__tests__", "foo.test.ts")
	specSpec := abs("repo", "src", "__tests__", "foo.spec.ts")

	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{testSpec: true, specSpec: true}, nil)
	res, err := h.uc.Resolve(abs("repo", "src", "foo.ts"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Target != "foo.test.ts" {
		t.Errorf("expected first pattern to win, got %s", res.Target)
	}

	h = newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{specSpec: true}, nil)
	res, err = h.uc.Resolve(abs("repo", "src", "foo.ts"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Target != "foo.spec.ts" || res.Options[0] != specSpec {
		t.Errorf("expected fallback to second pattern, got %+v", res)
	}
}

func TestRun_NearTieOffersChoice(t *testing.T) {
	inTests := abs("repo", "src", "__tests__", "foo.test.ts")
	inParent := abs("repo", "foo.test.ts")
	scores := map[string]float64{inTests: 0.88, inParent: 0.91}
	scorer := func(_, target string) float64 { return scores[target] }

	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{inTests: true, inParent: true}, scorer)
	h.chooser.pick = 1

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.chooser.offered) != 1 {
		t.Fatalf("expected one prompt, got %d", len(h.chooser.offered))
	}
	offered := h.chooser.offered[0]
	if len(offered) != 2 || offered[0] != inParent || offered[1] != inTests {
		t.Errorf("expected best match first, got %v", offered)
	}
	if opened != inTests {
		t.Errorf("expected the picked file %s, got %s", inTests, opened)
	}
}

func TestRun_ClearWinnerSkipsChoice(t *testing.T) {
	inTests := abs("repo", "src", "__tests__", "foo.test.ts")
	inParent := abs("repo", "foo.test.ts")
	scores := map[string]float64{inTests: 0.91, inParent: 0.80}
	scorer := func(_, target string) float64 { return scores[target] }

	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{inTests: true, inParent: true}, scorer)

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.chooser.offered) != 0 {
		t.Errorf("expected no prompt, got %v", h.chooser.offered)
	}
	if opened != inTests {
		t.Errorf("expected %s, got %s", inTests, opened)
	}
}

func TestRun_CancelledChoiceOpensNothing(t *testing.T) {
	inTests := abs("repo", "src", "__tests__", "foo.test.ts")
	inParent := abs("repo", "foo.test.ts")
	scorer := func(_, _ string) float64 { return 0.5 }

	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{inTests: true, inParent: true}, scorer)
	h.chooser.cancel = true

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err != nil {
		t.Fatalf("expected cancel to be silent, got %v", err)
	}
	if opened != "" {
		t.Errorf("expected nothing opened, got %s", opened)
	}
	if len(h.opener.opened) != 0 {
		t.Errorf("expected opener not to be called, got %v", h.opener.opened)
	}
}

func TestRun_NoTestFound(t *testing.T) {
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{}, nil)

	_, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if nf.Filename != "foo.ts" || nf.Direction != domain.ToSpec {
		t.Errorf("expected the opened filename, got %+v", nf)
	}
	if err.Error() != `No test file found for file "foo.ts"` {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if len(h.opener.opened) != 0 {
		t.Errorf("expected nothing opened, got %v", h.opener.opened)
	}
}

func TestResolve_CodeFileNotFound(t *testing.T) {
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{}, nil)

	_, err := h.uc.Resolve(abs("repo", "src", "bar.spec.js"))
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Filename != "bar.js" || nf.Direction != domain.ToCode {
		t.Errorf("expected recovered filename bar.js, got %+v", nf)
	}
	if err.Error() != `File "bar.js" not found` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestRun_NoActiveFileOrWorkspace(t *testing.T) {
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{}, nil)

	for _, ws := range []fakeWorkspace{
		{root: abs("repo"), active: ""},
		{root: "", active: abs("repo", "src", "foo.ts")},
	} {
		opened, err := h.uc.Run(context.Background(), ws)
		if err != nil {
			t.Errorf("expected silent no-op for %+v, got %v", ws, err)
		}
		if opened != "" {
			t.Errorf("expected nothing opened for %+v, got %s", ws, opened)
		}
	}
	if len(h.opener.opened) != 0 {
		t.Errorf("expected opener not to be called, got %v", h.opener.opened)
	}
}

func TestRun_ExcludedFileIsNoOp(t *testing.T) {
	spec := abs("repo", "node_modules", "lib", "__tests__", "x.test.js")
	h := newHarness(ResolveConfig{
		SpecFilePatterns: defaultPatterns,
		Excludes:         []string{"**/node_modules/**"},
	}, fakeChecker{spec: true}, nil)

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "node_modules", "lib", "x.js")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != "" {
		t.Errorf("expected excluded file to be skipped, got %s", opened)
	}

	opened, err = h.uc.Run(context.Background(), fakeWorkspace{root: abs("other"), active: abs("repo", "node_modules", "lib", "x.js")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != spec {
		t.Errorf("expected files outside the workspace to resolve, got %q", opened)
	}
}

func TestRun_RecordsJump(t *testing.T) {
	spec := abs("repo", "src", "__tests__", "foo.test.ts")
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{spec: true}, nil)
	rec := &fakeRecorder{err: errors.New("disk full")}
	h.uc.SetRecorder(rec)

	opened, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")})
	if err != nil {
		t.Fatalf("recording failures must not fail the jump: %v", err)
	}
	if len(rec.jumps) != 1 {
		t.Fatalf("expected 1 recorded jump, got %d", len(rec.jumps))
	}
	j := rec.jumps[0]
	if j.From != abs("repo", "src", "foo.ts") || j.To != opened || j.Direction != domain.ToSpec {
		t.Errorf("unexpected jump: %+v", j)
	}
}

func TestRun_OpenerError(t *testing.T) {
	spec := abs("repo", "src", "__tests__", "foo.test.ts")
	h := newHarness(ResolveConfig{SpecFilePatterns: defaultPatterns}, fakeChecker{spec: true}, nil)
	h.opener.err = errors.New("editor crashed")

	if _, err := h.uc.Run(context.Background(), fakeWorkspace{root: abs("repo"), active: abs("repo", "src", "foo.ts")}); err == nil {
		t.Error("expected opener error to be returned")
	}
}

func TestRun_Filesystem(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	if err := os.MkdirAll(filepath.Join(src, "__tests__"), 0755); err != nil {
		t.Fatal(err)
	}
	code := filepath.Join(src, "foo.ts")
	spec := filepath.Join(src, "__tests__", "foo.test.ts")
	for _, f := range []string{code, spec} {
		if err := os.WriteFile(f, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	opener := &fakeOpener{}
	uc := NewResolveUseCase(
		ResolveConfig{SpecFilePatterns: defaultPatterns},
		locator.NewLocator(fs.NewChecker()),
		similarity.NewDisambiguator(similarity.DefaultTolerance),
		&fakeChooser{},
		opener,
		nil,
	)

	opened, err := uc.Run(context.Background(), fakeWorkspace{root: root, active: code})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opened != spec {
		t.Errorf("expected %s, got %s", spec, opened)
	}
}
