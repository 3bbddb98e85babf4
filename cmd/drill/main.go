// Package main implements the interactive terminal drill. It loads the
// letter table and a saved progression, presents one card at a time, and
// persists after every review.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/otiyot/gematria/internal/catalog"
	"github.com/otiyot/gematria/internal/config"
	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/domain/gematria"
	"github.com/otiyot/gematria/internal/letters"
	"github.com/otiyot/gematria/internal/platform/logger"
	"github.com/otiyot/gematria/internal/platform/sqlite"
	"github.com/otiyot/gematria/internal/progression"
	"github.com/otiyot/gematria/internal/selection"
	"github.com/otiyot/gematria/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "drill: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	systemFlag := flag.String("system", "", "gematria system to drill (overrides config)")
	resetFlag := flag.Bool("reset", false, "discard saved progress for the system before starting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.Setup(cfg.Drill)

	raw := cfg.Drill.System
	if *systemFlag != "" {
		raw = *systemFlag
	}
	system, err := domain.ParseSystem(raw)
	if err != nil {
		return fmt.Errorf("unknown system %q (want one of %v)", raw, domain.Systems())
	}

	defs, err := letters.LoadLetters(cfg.Data.LettersPath)
	if err != nil {
		return fmt.Errorf("loading letter table: %w", err)
	}
	corpus, err := letters.LoadExamples(cfg.Data.ExamplesPath)
	if err != nil {
		return fmt.Errorf("loading example corpus: %w", err)
	}
	log.Info("data loaded",
		"letters", len(defs),
		"examples", len(corpus),
		"system", system)

	db, err := sqlite.Open(cfg.Data.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening progression store: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if *resetFlag {
		if err := db.Delete(ctx, system); err != nil && !store.IsNotFoundError(err) {
			return fmt.Errorf("resetting progress: %w", err)
		}
		log.Info("progress reset", "system", system)
	}

	ctrl, err := loadController(ctx, db, defs, system, log)
	if err != nil {
		return err
	}

	showExample(corpus, system)
	return drillLoop(ctx, db, ctrl, system)
}

func loadController(ctx context.Context, db *sqlite.Store, defs []domain.LetterDefinition,
	system domain.System, log *slog.Logger) (*progression.Controller, error) {

	opts := []progression.Option{
		progression.WithLogger(log),
		progression.WithRand(rand.New(rand.NewSource(progression.NewSeed()))),
	}

	state, err := db.Get(ctx, system)
	if store.IsNotFoundError(err) {
		return progression.New(defs, system, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	ctrl, err := progression.Load(defs, state, opts...)
	if errors.Is(err, domain.ErrValidation) {
		return nil, fmt.Errorf("saved progress is corrupt, rerun with --reset: %w", err)
	}
	return ctrl, err
}

// showExample prints one corpus word for the drilled system, when the
// corpus has any.
func showExample(corpus []letters.Example, system domain.System) {
	entries := letters.ForSystem(corpus, system)
	if len(entries) == 0 {
		return
	}
	ex := entries[rand.Intn(len(entries))]
	fmt.Printf("%s (%s) = %d %s, %s",
		ex.Hebrew, ex.Transliteration, ex.Value, gematria.Encode(ex.Value, false), ex.Meaning)
	if ex.Attribution != "" {
		fmt.Printf(" [%s]", ex.Attribution)
	}
	fmt.Println()
	fmt.Println()
}

func drillLoop(ctx context.Context, db *sqlite.Store, ctrl *progression.Controller,
	system domain.System) error {

	in := bufio.NewScanner(os.Stdin)
	for {
		if ctrl.Completed() {
			fmt.Printf("All %d tiers of %s complete.\n", ctrl.State().TierCount, system)
			return nil
		}

		result := ctrl.NextCard()
		switch result.Type {
		case selection.ResultAdvance:
			advanced, err := ctrl.TryAdvance()
			if err != nil {
				return fmt.Errorf("advancing tier: %w", err)
			}
			if err := db.Save(ctx, ctrl.State()); err != nil {
				return fmt.Errorf("saving progress: %w", err)
			}
			if advanced {
				announceTier(ctrl, system)
			}

		case selection.ResultCard:
			quit, err := presentCard(ctx, db, ctrl, in, result)
			if err != nil {
				return err
			}
			if quit {
				fmt.Println("Progress saved.")
				return nil
			}

		case selection.ResultReview:
			fmt.Println("Nothing to drill in this tier.")
			return nil
		}
	}
}

func announceTier(ctrl *progression.Controller, system domain.System) {
	state := ctrl.State()
	label := catalog.TierLabel(state.CurrentTier)
	if label == "" {
		label = fmt.Sprintf("%d", state.CurrentTier)
	}
	fmt.Printf("Tier mastered. Now on tier %s (%d/%d) of %s.\n",
		label, state.CurrentTier, state.TierCount, system)
}

// presentCard shows one prompt, reveals the answer on enter, and reads a
// quality rating. Returns true when the learner quits.
func presentCard(ctx context.Context, db *sqlite.Store, ctrl *progression.Controller,
	in *bufio.Scanner, result selection.Result) (bool, error) {

	if result.Spec == nil {
		return false, fmt.Errorf("card %s has no spec in the active tier", result.Card.CardID)
	}

	fmt.Printf("  %s\n", result.Spec.Prompt)
	fmt.Print("  [enter to reveal, q to quit] ")
	if !in.Scan() {
		return true, nil
	}
	if strings.TrimSpace(in.Text()) == "q" {
		return true, nil
	}

	fmt.Printf("  -> %s\n", result.Spec.Answer)

	for {
		fmt.Print("  rate: 1=wrong 3=unsure 4=good 5=easy q=quit: ")
		if !in.Scan() {
			return true, nil
		}
		answer := strings.TrimSpace(in.Text())
		if answer == "q" {
			return true, nil
		}

		quality, ok := parseQuality(answer)
		if !ok {
			fmt.Println("  please answer 1, 3, 4, 5, or q")
			continue
		}

		if _, err := ctrl.SubmitReview(result.Card.CardID, quality); err != nil {
			return false, fmt.Errorf("applying review: %w", err)
		}
		if err := db.Save(ctx, ctrl.State()); err != nil {
			return false, fmt.Errorf("saving progress: %w", err)
		}
		fmt.Println()
		return false, nil
	}
}

func parseQuality(raw string) (domain.ReviewQuality, bool) {
	switch raw {
	case "1":
		return domain.QualityWrong, true
	case "3":
		return domain.QualityUnsure, true
	case "4":
		return domain.QualityGood, true
	case "5":
		return domain.QualityEasy, true
	default:
		return 0, false
	}
}
