// Package importer loads marketplace listing exports into the favorites garage.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/carwise/carwise/internal/model"
	"github.com/carwise/carwise/internal/service"
)

// Result summarizes one import run.
type Result struct {
	Imported int
	Skipped  int
}

// Importer reads vehicle listings from a JSON export and saves them through
// the storage layer.
type Importer struct {
	store    service.Storage
	progress io.Writer
}

// New creates an Importer. Progress output goes to progress; pass io.Discard
// to silence it.
func New(store service.Storage, progress io.Writer) *Importer {
	if progress == nil {
		progress = io.Discard
	}
	return &Importer{store: store, progress: progress}
}

// ImportFile reads a JSON array of vehicle listings from path and saves each
// valid record. Listings without an ID get a generated one; invalid records
// are skipped with a warning rather than aborting the run.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return i.Import(ctx, f)
}

// Import reads a JSON array of vehicle listings from r and saves each valid
// record.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	var vehicles []model.Vehicle
	if err := json.NewDecoder(r).Decode(&vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode listings: %w", err)
	}

	bar := i.newProgressBar(len(vehicles))
	result := &Result{}

	for idx := range vehicles {
		vehicle := &vehicles[idx]
		if vehicle.ID == "" {
			vehicle.ID = uuid.NewString()
		}

		if err := vehicle.Validate(); err != nil {
			slog.Warn("Skipping invalid listing", "index", idx, "error", err)
			result.Skipped++
			_ = bar.Add(1)
			continue
		}

		if err := i.store.SaveVehicle(ctx, vehicle); err != nil {
			return result, fmt.Errorf("failed to save listing %s: %w", vehicle.ID, err)
		}
		result.Imported++
		_ = bar.Add(1)
	}

	return result, nil
}

func (i *Importer) newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(i.progress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing listings..."),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(i.progress)
		}),
	)
}
