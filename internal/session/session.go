// Package session drives the interactive add-context flow: a strictly
// sequential state machine that checks the holding directory, dispatches on
// whether a document already exists, collects answers, and persists the
// rendered result only after validation and explicit confirmation.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/kingrea/project-intel/internal/config"
	"github.com/kingrea/project-intel/internal/intel"
	"github.com/kingrea/project-intel/internal/logging"
	"github.com/kingrea/project-intel/internal/scan"
)

var (
	// ErrCancelled means the user declined to continue. Nothing was written.
	ErrCancelled = errors.New("session: cancelled by user")

	// ErrDeferred means the user chose to harvest external context first.
	ErrDeferred = errors.New("session: deferred to harvesting")
)

// ValidationError carries the enumerated rule violations that blocked a
// write. The violations were already shown to the user when it is returned.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document failed validation (%d rule(s) violated)", len(e.Violations))
}

// Session owns the one in-flight record of an interactive run.
type Session struct {
	cfg   *config.Config
	store *intel.Store
	p     *Prompter
	log   *logging.Logger
	now   func() time.Time
}

// Option customizes a Session during construction.
type Option func(*Session)

// WithClock overrides the clock used for date stamps and backup names.
func WithClock(clock func() time.Time) Option {
	return func(s *Session) {
		s.now = clock
	}
}

// New builds a session over the resolved configuration.
func New(cfg *config.Config, p *Prompter, log *logging.Logger, opts ...Option) *Session {
	s := &Session{cfg: cfg, p: p, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.store = intel.NewStore(cfg, intel.WithClock(s.now))
	return s
}

var (
	keepUpdateRemove = []string{"Keep", "Update", "Remove"}
	keepAddRemoveAll = []string{"Keep", "Add new entries", "Remove all"}
)

// Run executes the full interactive session. With update set the holding
// directory check is skipped and the existing-document branch is assumed.
func (s *Session) Run(update bool) error {
	if !update {
		if err := s.checkHoldingDir(); err != nil {
			return err
		}
	}
	exists, err := s.store.DocumentExists()
	if err != nil {
		return err
	}
	if !exists {
		return s.runFirstTime()
	}
	choice, err := s.p.Choose("A project intelligence document already exists. What would you like to do?", []string{
		"Review & update each section",
		"Add new details",
		"Replace everything",
		"Cancel",
	})
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.runReview()
	case 2:
		return s.runAddNew()
	case 3:
		return s.runReplaceAll()
	default:
		return ErrCancelled
	}
}

// RunTechStack is the direct tech-stack-only entry point: four prompts
// merged into the otherwise untouched record, one version bump.
func (s *Session) RunTechStack() error {
	rec, err := s.store.LoadRecord()
	if err != nil {
		return err
	}
	s.p.Println(titleStyle.Render("Technology stack"))
	stack, err := s.collectTechStack(rec.TechStack)
	if err != nil {
		return err
	}
	rec.TechStack = stack
	rec.Version = intel.IncrementVersion(rec.Version)
	return s.finish(rec, "tech-stack update")
}

// RunPatterns is the direct patterns-only entry point. It requires an
// existing document; "skip" preserves the current value of either pattern.
func (s *Session) RunPatterns() error {
	exists, err := s.store.DocumentExists()
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("session: no intelligence document exists yet; run add-context without flags first")
	}
	rec, err := s.store.LoadRecord()
	if err != nil {
		return err
	}
	body, skipped, err := s.p.ReadBlock("API pattern")
	if err != nil {
		return err
	}
	if !skipped {
		rec.APIPattern = body
	}
	body, skipped, err = s.p.ReadBlock("Component pattern")
	if err != nil {
		return err
	}
	if !skipped {
		rec.ComponentPattern = body
	}
	rec.Version = intel.IncrementVersion(rec.Version)
	return s.finish(rec, "patterns update")
}

// checkHoldingDir surfaces stray external context files and lets the user
// defer to the harvesting flow before touching the intelligence document.
func (s *Session) checkHoldingDir() error {
	files, err := scan.ExternalContextFiles(s.cfg.HoldingDir())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	s.p.Println(warnStyle.Render(fmt.Sprintf("Found %d external context file(s) in %s:", len(files), s.cfg.HoldingDir())))
	for _, name := range files {
		s.p.Printf("  - %s\n", name)
	}
	harvest, err := s.p.Confirm("Harvest these files before updating the intelligence document?")
	if err != nil {
		return err
	}
	if harvest {
		s.p.Println("Run the harvesting flow first, then re-run add-context.")
		s.log.Printf("deferred to harvesting: %d file(s) waiting", len(files))
		return ErrDeferred
	}
	return nil
}

func (s *Session) runFirstTime() error {
	s.p.Println(titleStyle.Render("No intelligence document found. Creating one."))
	rec, err := s.collectRecord(intel.NewRecord(s.store.Today()))
	if err != nil {
		return err
	}
	rec.Version = intel.InitialVersion
	return s.finish(rec, "created")
}

// runReview walks exactly six sub-prompts, one per field group. The version
// bumps once per session after the loop, whether or not anything changed.
func (s *Session) runReview() error {
	rec, err := s.store.LoadRecord()
	if err != nil {
		return err
	}

	choice, err := s.p.Choose("Technology stack", keepUpdateRemove)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		stack, err := s.collectTechStack(rec.TechStack)
		if err != nil {
			return err
		}
		rec.TechStack = stack
	case 3:
		rec.TechStack = nil
	}

	choice, err = s.p.Choose("API pattern", keepUpdateRemove)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		body, skipped, err := s.p.ReadBlock("API pattern")
		if err != nil {
			return err
		}
		if !skipped {
			rec.APIPattern = body
		}
	case 3:
		rec.APIPattern = ""
	}

	choice, err = s.p.Choose("Component pattern", keepUpdateRemove)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		body, skipped, err := s.p.ReadBlock("Component pattern")
		if err != nil {
			return err
		}
		if !skipped {
			rec.ComponentPattern = body
		}
	case 3:
		rec.ComponentPattern = ""
	}

	choice, err = s.p.Choose("Naming conventions", keepUpdateRemove)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		naming, err := s.collectNaming(rec.Naming)
		if err != nil {
			return err
		}
		rec.Naming = naming
	case 3:
		rec.Naming = nil
	}

	choice, err = s.p.Choose("Code standards", keepAddRemoveAll)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		items, err := s.p.ReadList("Code standards")
		if err != nil {
			return err
		}
		rec.CodeStandards = append(rec.CodeStandards, items...)
	case 3:
		rec.CodeStandards = nil
	}

	choice, err = s.p.Choose("Security requirements", keepAddRemoveAll)
	if err != nil {
		return err
	}
	switch choice {
	case 2:
		items, err := s.p.ReadList("Security requirements")
		if err != nil {
			return err
		}
		rec.SecurityRequirements = append(rec.SecurityRequirements, items...)
	case 3:
		rec.SecurityRequirements = nil
	}

	rec.Version = intel.IncrementVersion(rec.Version)
	return s.finish(rec, "review")
}

func (s *Session) runAddNew() error {
	rec, err := s.store.LoadRecord()
	if err != nil {
		return err
	}
	rec, err = s.collectRecord(rec)
	if err != nil {
		return err
	}
	rec.Version = intel.IncrementVersion(rec.Version)
	return s.finish(rec, "add-new")
}

// runReplaceAll archives the current document pair, then rebuilds from an
// empty record at the initial version.
func (s *Session) runReplaceAll() error {
	proceed, err := s.p.Confirm("Replace everything? The current documents are archived first.")
	if err != nil {
		return err
	}
	if !proceed {
		return ErrCancelled
	}
	dir, err := s.store.Backup()
	if err != nil {
		return err
	}
	s.p.Println(okStyle.Render("Archived current documents to " + dir))
	s.log.Printf("replace-all: archived to %s", dir)
	rec, err := s.collectRecord(intel.NewRecord(s.store.Today()))
	if err != nil {
		return err
	}
	rec.Version = intel.InitialVersion
	return s.finish(rec, "replace-all")
}

// finish renders, validates, confirms, and persists. Validation is a hard
// gate: a violated rule aborts before the confirmation prompt, and no file
// is touched without a yes.
func (s *Session) finish(rec intel.Record, action string) error {
	rec.Updated = s.store.Today()
	document := intel.RenderDocument(rec)
	index := intel.RenderIndex(rec.Updated)

	if violations := intel.Validate(document); len(violations) > 0 {
		s.p.Println(warnStyle.Render("The rendered document violates these rules; nothing was written:"))
		for _, v := range violations {
			s.p.Printf("  - %v\n", v)
		}
		s.log.Printf("%s: validation failed with %d violation(s)", action, len(violations))
		return &ValidationError{Violations: violations}
	}

	proceed, err := s.p.Confirm(fmt.Sprintf("Write version %s to %s?", rec.Version, s.cfg.TargetDir()))
	if err != nil {
		return err
	}
	if !proceed {
		return ErrCancelled
	}
	if err := s.store.Write(document, index); err != nil {
		return err
	}
	s.p.Println(okStyle.Render(fmt.Sprintf("Wrote %s (version %s).", s.cfg.TargetDir(), rec.Version)))
	s.log.Printf("%s: wrote version %s", action, rec.Version)
	return nil
}
