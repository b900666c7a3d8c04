package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/vk/notesmerge/internal/config"
	"github.com/vk/notesmerge/internal/ctxlog"
	"github.com/vk/notesmerge/internal/fsutil"
	"github.com/vk/notesmerge/internal/ingest"
	"github.com/vk/notesmerge/internal/join"
	"github.com/vk/notesmerge/internal/model"
	"github.com/vk/notesmerge/internal/report"
	"github.com/vk/notesmerge/internal/result"
	"github.com/vk/notesmerge/internal/sorting"
)

// ErrNoCourses is returned when a run has nothing to merge.
var ErrNoCourses = errors.New("no courses to merge")

// plan is the fully resolved input of one run.
type plan struct {
	settings   *config.Settings
	strategy   join.Strategy
	courses    []string
	rosterPath string
	gradePaths []string
	opts       ingest.Options
}

// Run reads the roster and the grade file of every tracked course, merges
// them, sorts the roster administratively, evaluates each student and writes
// the report. Nothing is written unless every step succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, err := a.plan(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Run planned.",
		"strategy", p.strategy.Name(),
		"courses", p.courses,
		"roster", p.rosterPath,
	)

	// Every input must exist before any of them is read.
	if err := ingest.CheckExists(append([]string{p.rosterPath}, p.gradePaths...)...); err != nil {
		return err
	}

	roster, err := ingest.ReadRoster(p.rosterPath, p.opts, p.settings.Profiles, p.courses)
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}
	a.logger.Info("Roster loaded.", "students", len(roster))

	if err := a.merge(ctx, p, roster); err != nil {
		return err
	}

	sorting.SortAdmin(roster)

	rows, err := evaluate(p.settings, roster)
	if err != nil {
		return err
	}

	w, err := report.NewWriter(report.Format(p.settings.OutputFormat), p.settings.Separator)
	if err != nil {
		return err
	}
	if err := w.Write(p.settings.OutputFile, p.courses, rows); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	a.logger.Info("🏁 Report written.", "path", p.settings.OutputFile, "format", p.settings.OutputFormat, "students", len(rows))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// plan loads the settings and resolves strategy, courses and file paths.
func (a *App) plan(ctx context.Context) (*plan, error) {
	settings, err := a.loadSettings(ctx)
	if err != nil {
		return nil, err
	}

	strategy, err := join.ByName(settings.Strategy)
	if err != nil {
		return nil, err
	}

	var discovered []string
	if a.config.All {
		discovered, err = fsutil.FindGradeFiles(a.config.DataDir, settings.GradeFilePattern)
		if err != nil {
			return nil, fmt.Errorf("failed to discover grade files: %w", err)
		}
		discovered = a.skipOwnFiles(ctx, settings, discovered)
		ctxlog.FromContext(ctx).Debug("Grade files discovered.", "courses", discovered)
	}

	courses := resolveCourses(settings.Courses, a.config.Courses, discovered)
	if len(courses) == 0 {
		return nil, ErrNoCourses
	}

	gradePaths := make([]string, len(courses))
	for i, c := range courses {
		gradePaths[i] = filepath.Join(a.config.DataDir, settings.GradeFile(c))
	}

	return &plan{
		settings:   settings,
		strategy:   strategy,
		courses:    courses,
		rosterPath: filepath.Join(a.config.DataDir, settings.RosterFile),
		gradePaths: gradePaths,
		opts:       ingest.Options{Separator: settings.Separator, Encoding: settings.Encoding},
	}, nil
}

// skipOwnFiles drops discovered courses whose grade file is the report or the
// roster, which can match the grade pattern ("notes_etudiants.csv").
func (a *App) skipOwnFiles(ctx context.Context, settings *config.Settings, courses []string) []string {
	own := []string{settings.OutputFile, filepath.Join(a.config.DataDir, settings.RosterFile)}
	kept := courses[:0]
	for _, c := range courses {
		path := filepath.Join(a.config.DataDir, settings.GradeFile(c))
		if slices.ContainsFunc(own, func(o string) bool { return samePath(o, path) }) {
			ctxlog.FromContext(ctx).Debug("Skipping discovered file that is not a grade file.", "path", path)
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// merge joins every course into roster, preparing the orderings the strategy
// relies on.
func (a *App) merge(ctx context.Context, p *plan, roster model.Roster) error {
	logger := ctxlog.FromContext(ctx)

	if p.strategy.NeedsSortedRoster() {
		sorting.SortByID(roster)
		logger.Debug("Roster sorted by identifier.")
	}

	for i := range p.courses {
		if err := mergeCourse(ctxlog.With(ctx, "course", p.courses[i]), p, roster, i); err != nil {
			return err
		}
	}
	return nil
}

// mergeCourse reads and joins the grade file of the i-th course.
func mergeCourse(ctx context.Context, p *plan, roster model.Roster, i int) error {
	course := p.courses[i]
	entries, err := ingest.ReadGrades(p.gradePaths[i], p.opts)
	if err != nil {
		return fmt.Errorf("failed to read grades of %s: %w", course, err)
	}
	if p.strategy.NeedsSortedEntries() {
		sorting.SortEntries(entries)
	}
	if err := p.strategy.Apply(course, roster, entries); err != nil {
		return fmt.Errorf("failed to merge grades of %s: %w", course, err)
	}
	ctxlog.FromContext(ctx).Info("Course merged.", "entries", len(entries))
	return nil
}

func evaluate(settings *config.Settings, roster model.Roster) ([]report.Row, error) {
	ev, err := result.NewEvaluator(settings.Mentions, settings.AbsentLabel)
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(roster))
	for i, s := range roster {
		rows[i] = report.Row{Student: s, Result: ev.Evaluate(s.Grades)}
	}
	return rows, nil
}
