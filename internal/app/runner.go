// Package app provides the main application orchestration for bingocard.
// A Runner takes one configuration through load, check, generate and write.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dbmrq/bingocard/internal/card"
	"github.com/dbmrq/bingocard/internal/config"
	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
	"github.com/dbmrq/bingocard/internal/logging"
	"github.com/dbmrq/bingocard/internal/tiles"
	"github.com/dbmrq/bingocard/internal/workbook"
)

// EventType identifies the type of run event.
type EventType string

const (
	EventRunStarted    EventType = "run_started"
	EventTilesLoaded   EventType = "tiles_loaded"
	EventTilesChecked  EventType = "tiles_checked"
	EventCardGenerated EventType = "card_generated"
	EventWorkbookSaved EventType = "workbook_saved"
	EventRunCompleted  EventType = "run_completed"
	EventRunFailed     EventType = "run_failed"
)

// Event represents a run event for observers (CLI progress, logging).
type Event struct {
	Type      EventType
	RunID     string
	Player    string
	Message   string
	Error     error
	Timestamp time.Time
}

// EventHandler is a callback for run events.
type EventHandler func(event Event)

// Options configures a Runner.
type Options struct {
	// Creator is recorded in the workbook properties (default "bingocard").
	Creator string
	// Logger receives run logs. Nil uses the global logger.
	Logger *logging.Logger
	// OnEvent is called for each run event (optional).
	OnEvent EventHandler
}

// Result is the outcome of one run.
type Result struct {
	RunID string
	// Seed is the effective shuffle seed, so a run can be reproduced.
	Seed       int64
	Tiles      *tiles.List
	Report     *tiles.Report
	Cards      []*card.Card
	OutputPath string
}

// Runner orchestrates a single card generation run.
type Runner struct {
	config *config.Config
	opts   *Options
}

// NewRunner creates a Runner for cfg. Defaults are applied to a copy of
// opts, never to cfg.
func NewRunner(cfg *config.Config, opts *Options) *Runner {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Creator == "" {
		o.Creator = "bingocard"
	}
	return &Runner{config: cfg, opts: &o}
}

// Check loads the tile list and reports duplicate and similar tiles.
// It never fails on findings; the strict setting is applied by Run.
func (r *Runner) Check(ctx context.Context) (*tiles.Report, error) {
	_, report, err := r.loadAndCheck(ctx, r.logger(ctx), "")
	return report, err
}

// DryRun loads, checks and generates cards without writing a workbook.
func (r *Runner) DryRun(ctx context.Context) (*Result, error) {
	return r.run(ctx, false)
}

// Run performs the full pipeline and writes the workbook.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	return r.run(ctx, true)
}

func (r *Runner) run(ctx context.Context, write bool) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	ctx = logging.WithRunID(ctx, result.RunID)
	log := r.logger(ctx)

	r.emit(Event{Type: EventRunStarted, RunID: result.RunID})
	log.Info("run started",
		"tiles", r.config.Tiles.Path,
		"people", len(r.config.People),
		"write", write)

	err := r.pipeline(ctx, log, result, write)
	if err != nil {
		log.Error("run failed", "error", err)
		r.emit(Event{Type: EventRunFailed, RunID: result.RunID, Error: err})
		return result, err
	}

	log.Info("run completed", "cards", len(result.Cards), "output", result.OutputPath)
	r.emit(Event{Type: EventRunCompleted, RunID: result.RunID, Message: result.OutputPath})
	return result, nil
}

func (r *Runner) pipeline(ctx context.Context, log *logging.Logger, result *Result, write bool) error {
	list, report, err := r.loadAndCheck(ctx, log, result.RunID)
	if err != nil {
		return err
	}
	result.Tiles = list
	result.Report = report

	if !report.Clean() {
		if r.config.Tiles.Strict {
			return bingoerrors.SimilarTilesFound(len(report.Duplicates()), len(report.Similar()), report.DistanceLimit)
		}
		log.Warn("similar tiles found, generating anyway",
			"duplicates", len(report.Duplicates()),
			"similar", len(report.Similar()))
	}

	if err := ValidatePlayers(r.config.People); err != nil {
		return err
	}

	cards, seed, err := r.generate(ctx, log, list.Tiles, result.RunID)
	if err != nil {
		return err
	}
	result.Cards = cards
	result.Seed = seed

	if !write {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.write(cards, result.RunID)
	if err != nil {
		return err
	}
	result.OutputPath = path
	log.Info("workbook saved", "path", path, "sheets", len(cards))
	r.emit(Event{Type: EventWorkbookSaved, RunID: result.RunID, Message: path})
	return nil
}

func (r *Runner) loadAndCheck(ctx context.Context, log *logging.Logger, runID string) (*tiles.List, *tiles.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	list, err := tiles.LoadFile(r.config.Tiles.Path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("tiles loaded", "path", r.config.Tiles.Path, "unique", list.Len(), "duplicates", len(list.Duplicates))
	r.emit(Event{
		Type:    EventTilesLoaded,
		RunID:   runID,
		Message: fmt.Sprintf("%d tiles", list.Len()),
	})

	checker := &tiles.Checker{
		DistanceLimit: r.config.Tiles.DistanceLimit,
		IgnoreCase:    r.config.Tiles.IgnoreCase,
	}
	report := checker.Check(list)

	for _, f := range report.Findings {
		log.Debug("tile finding", "kind", string(f.Kind), "a", f.A, "b", f.B, "distance", f.Distance)
	}
	log.Info("tiles checked",
		"compared", report.Compared,
		"duplicates", len(report.Duplicates()),
		"similar", len(report.Similar()))
	r.emit(Event{
		Type:    EventTilesChecked,
		RunID:   runID,
		Message: fmt.Sprintf("%d findings", len(report.Findings)),
	})

	return list, report, nil
}

func (r *Runner) generate(ctx context.Context, log *logging.Logger, tileList []string, runID string) ([]*card.Card, int64, error) {
	gen := card.NewGenerator(r.config.Card.Seed, r.config.Card.FreeSquare)
	log.Debug("generator ready", "seed", gen.Seed())

	cards := make([]*card.Card, 0, len(r.config.People))
	for _, player := range r.config.People {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		c, err := gen.Generate(player, tileList)
		if err != nil {
			return nil, 0, err
		}
		cards = append(cards, c)

		log.WithContext(logging.WithPlayer(ctx, player)).Debug("card generated")
		r.emit(Event{Type: EventCardGenerated, RunID: runID, Player: player})
	}
	return cards, gen.Seed(), nil
}

func (r *Runner) write(cards []*card.Card, runID string) (string, error) {
	w, err := workbook.New(workbook.Options{
		Title:   r.config.Card.Title,
		RunID:   runID,
		Creator: r.opts.Creator,
	})
	if err != nil {
		return "", err
	}
	defer w.Close()

	for _, c := range cards {
		if err := w.AddCard(c); err != nil {
			return "", err
		}
	}

	path := r.config.Output.Path
	if path == "" {
		path = workbook.DefaultOutputPath
	}
	if err := w.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// ValidatePlayers checks every player name before any card is generated:
// names must be usable as worksheet names and unique ignoring case.
func ValidatePlayers(players []string) error {
	if len(players) == 0 {
		return bingoerrors.InvalidPlayerName("", "no players given")
	}
	for _, p := range players {
		if strings.TrimSpace(p) == "" {
			return bingoerrors.InvalidPlayerName(p, "name is empty")
		}
		if err := workbook.ValidateSheetName(p); err != nil {
			return bingoerrors.InvalidSheetName(p, err)
		}
	}
	return checkUniquePlayers(players)
}

func checkUniquePlayers(players []string) error {
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		key := strings.ToLower(p)
		if seen[key] {
			return bingoerrors.DuplicatePlayer(p)
		}
		seen[key] = true
	}
	return nil
}

func (r *Runner) logger(ctx context.Context) *logging.Logger {
	l := r.opts.Logger
	if l == nil {
		l = logging.Global()
	}
	return l.WithContext(ctx)
}

func (r *Runner) emit(e Event) {
	if r.opts.OnEvent == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	r.opts.OnEvent(e)
}
