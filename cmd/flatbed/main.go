package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/tsawler/flatbed/batch"
	"github.com/tsawler/flatbed/plan"
)

func main() {
	var (
		planPath  = flag.String("plan", "", "composition plan file (YAML)")
		input     = flag.String("input", "", "source image or PDF for one-shot mode")
		corners   = flag.String("corners", "", "document corners as \"x,y;x,y;x,y;x,y\" (TL;TR;BR;BL)")
		widthCM   = flag.Float64("width-cm", 8.6, "printed card width in centimeters")
		output    = flag.String("out", "sheet.png", "output sheet path")
		page      = flag.Int("page", 0, "PDF page to render (1-indexed)")
		dpi       = flag.Int("dpi", 0, "PDF render DPI")
		rotate    = flag.Int("rotate", 0, "rotate the crop by a multiple of 90 degrees")
		workers   = flag.Int("workers", 0, "concurrent scans (0 = automatic)")
		verbose   = flag.Bool("verbose", false, "log progress and warnings")
		exportDir = flag.String("export-dir", "", "also export every scanned card as PNG into this directory")
	)
	flag.Parse()

	if (*planPath == "") == (*input == "") {
		fmt.Fprintln(os.Stderr, "usage: flatbed -plan scan.yaml | flatbed -input photo.jpg -corners \"x,y;x,y;x,y;x,y\" [-out sheet.png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	pl, err := buildPlan(*planPath, *input, *corners, *widthCM, *output, *page, *dpi, *rotate)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	proc := batch.NewProcessor(*workers)
	proc.Verbose = *verbose

	fs := afero.NewOsFs()
	if err := proc.RunToFile(context.Background(), pl, fs); err != nil {
		log.Fatalf("error: %v", err)
	}
	if *verbose {
		log.Printf("wrote %s", pl.Output)
	}

	if *exportDir != "" {
		if err := proc.Store().Export(fs, *exportDir); err != nil {
			log.Fatalf("error exporting cards: %v", err)
		}
		if *verbose {
			log.Printf("exported %d cards to %s", proc.Store().Len(), *exportDir)
		}
	}
}

func buildPlan(planPath, input, corners string, widthCM float64, output string, page, dpi, rotate int) (*plan.Plan, error) {
	if planPath != "" {
		pl, err := plan.Read(planPath)
		if err != nil {
			return nil, fmt.Errorf("reading plan %s: %w", planPath, err)
		}
		return pl, nil
	}

	cs, err := parseCorners(corners)
	if err != nil {
		return nil, err
	}

	return &plan.Plan{
		Version:     "1.0",
		Output:      output,
		CardWidthCM: widthCM,
		Cards: []plan.Card{{
			Source:   input,
			Page:     page,
			DPI:      dpi,
			Rotation: rotate,
			Corners:  cs,
		}},
	}, nil
}

// parseCorners parses "x,y;x,y;x,y;x,y" in TL;TR;BR;BL order.
func parseCorners(s string) ([4][2]float64, error) {
	var out [4][2]float64

	parts := strings.Split(s, ";")
	if len(parts) != 4 {
		return out, fmt.Errorf("corners: got %d points, want 4 as \"x,y;x,y;x,y;x,y\"", len(parts))
	}

	for i, part := range parts {
		xy := strings.Split(strings.TrimSpace(part), ",")
		if len(xy) != 2 {
			return out, fmt.Errorf("corners: point %d is not \"x,y\"", i)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return out, fmt.Errorf("corners: point %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return out, fmt.Errorf("corners: point %d: %w", i, err)
		}
		out[i] = [2]float64{x, y}
	}
	return out, nil
}
