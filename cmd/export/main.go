// Package main emits the letter table, the example corpus, and the
// static card catalog as JSON files for embedding in the web front end.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/otiyot/gematria/internal/catalog"
	"github.com/otiyot/gematria/internal/config"
	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/letters"
	"github.com/otiyot/gematria/internal/platform/logger"
)

type tierExport struct {
	Tier   int               `json:"tier"`
	Label  string            `json:"label"`
	Static bool              `json:"static"`
	Cards  []domain.CardSpec `json:"cards"`
}

type catalogExport struct {
	System domain.System `json:"system"`
	Tiers  []tierExport  `json:"tiers"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	outDir := flag.String("out", "export", "directory to write JSON files into")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.Setup(cfg.Drill)

	defs, err := letters.LoadLetters(cfg.Data.LettersPath)
	if err != nil {
		return fmt.Errorf("loading letter table: %w", err)
	}
	corpus, err := letters.LoadExamples(cfg.Data.ExamplesPath)
	if err != nil {
		return fmt.Errorf("loading example corpus: %w", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(*outDir, "letters.json"), defs); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(*outDir, "examples.json"), corpus); err != nil {
		return err
	}

	catalogs := make([]catalogExport, 0, len(domain.Systems()))
	for _, system := range domain.Systems() {
		levels, err := catalog.BuildAll(defs, system)
		if err != nil {
			return fmt.Errorf("building %s catalog: %w", system, err)
		}
		export := catalogExport{System: system}
		for _, level := range levels {
			export.Tiers = append(export.Tiers, tierExport{
				Tier:   level.Tier,
				Label:  level.Label,
				Static: level.Static,
				Cards:  level.Specs,
			})
		}
		catalogs = append(catalogs, export)
	}
	if err := writeJSON(filepath.Join(*outDir, "catalog.json"), catalogs); err != nil {
		return err
	}

	log.Info("export complete",
		"dir", *outDir,
		"letters", len(defs),
		"examples", len(corpus),
		"systems", len(catalogs))
	return nil
}

func writeJSON(path string, value any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
