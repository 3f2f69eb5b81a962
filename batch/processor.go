package batch

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/flatbed"
	"github.com/tsawler/flatbed/gallery"
	"github.com/tsawler/flatbed/model"
	"github.com/tsawler/flatbed/plan"
)

// workerMemoryBudget is the amount of available memory assumed per worker,
// covering the source raster, the crop and the scaled card.
const workerMemoryBudget = 256 << 20

// Processor runs composition plans.
type Processor struct {
	// Workers bounds the number of cards scanned concurrently. Zero
	// picks a default from the machine's CPU count and free memory.
	Workers int

	// Verbose enables progress and warning logging.
	Verbose bool

	store *gallery.Store
}

// NewProcessor returns a Processor with the given concurrency bound; zero
// means choose automatically.
func NewProcessor(workers int) *Processor {
	return &Processor{
		Workers: workers,
		store:   gallery.NewStore(),
	}
}

// Store returns the gallery the processor adds every scanned document to.
func (p *Processor) Store() *gallery.Store {
	return p.store
}

// Run executes the plan and returns the composed sheet. Every card is
// scanned on its own worker; the first failure cancels the rest.
func (p *Processor) Run(ctx context.Context, pl *plan.Plan) (*image.RGBA, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}
	if p.Verbose {
		log.Printf("scanning %d cards with %d workers", len(pl.Cards), workers)
	}

	docs := make([]*model.Document, len(pl.Cards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, card := range pl.Cards {
		i, card := i, card
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, warnings, err := p.scanCard(card)
			if err != nil {
				return fmt.Errorf("card %d (%s): %w", i, card.Source, err)
			}
			if p.Verbose && len(warnings) > 0 {
				log.Printf("card %d (%s): %s", i, card.Source, flatbed.FormatWarnings(warnings))
			}

			docs[i] = doc
			return p.store.Add(doc)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatbed.Sheet(pl.CardWidthCM, docs...)
}

// RunToFile executes the plan and writes the sheet to the plan's output
// path as PNG.
func (p *Processor) RunToFile(ctx context.Context, pl *plan.Plan, fs afero.Fs) error {
	page, err := p.Run(ctx, pl)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(pl.Output); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := fs.Create(pl.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", pl.Output, err)
	}
	if err := png.Encode(f, page); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", pl.Output, err)
	}
	return f.Close()
}

func (p *Processor) scanCard(card plan.Card) (*model.Document, []flatbed.Warning, error) {
	s := flatbed.Open(card.Source).Corners(card.CornerSet())
	if card.Page > 0 {
		s = s.Page(card.Page)
	}
	if card.DPI > 0 {
		s = s.DPI(card.DPI)
	}
	if card.Rotation != 0 {
		s = s.Rotate(card.Rotation)
	}
	if adjust := card.Adjustments(); len(adjust) > 0 {
		s = s.Adjust(adjust...)
	}
	return s.Scan()
}

// defaultWorkers sizes the worker pool from the CPU count, capped by the
// memory each in-flight card is expected to hold.
func defaultWorkers() int {
	workers := runtime.NumCPU()

	if vm, err := mem.VirtualMemory(); err == nil {
		byMemory := int(vm.Available / workerMemoryBudget)
		if byMemory < workers {
			workers = byMemory
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
