// seehuhn.de/go/sketch - freehand drawing with an exact undo history
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command replay plays the scripted drawing sessions from the testcases
// package and writes the resulting pictures as PNG files.  With -json, the
// final history of every session is written as well.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/replay", "output directory")
	writeJSON := flag.Bool("json", false, "also write the history of each session")
	verbose := flag.Bool("v", false, "log history changes to stderr")
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sketch.SetLogger(slog.New(h))
	}

	if err := run(*outDir, *writeJSON); err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
}

func run(outDir string, writeJSON bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			b, err := tc.Run()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := writePNG(filepath.Join(outDir, name+".png"), b); err != nil {
				return err
			}
			if writeJSON {
				err := writeHistory(filepath.Join(outDir, name+".json"), name, b)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writePNG(fname string, b *sketch.Board) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, b.Image()); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}

type jsonSession struct {
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Actions []jsonAction `json:"actions"`
}

type jsonAction struct {
	ID    string        `json:"id"`
	Tool  string        `json:"tool"`
	State string        `json:"state"`
	Paths [][]jsonPoint `json:"paths"`
}

type jsonPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

func writeHistory(fname, name string, b *sketch.Board) error {
	r := b.Bounds()
	out := jsonSession{
		Name:   name,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
	for _, e := range b.Timeline() {
		a := e.Action
		ja := jsonAction{
			ID:    a.ID().String(),
			Tool:  a.Tool().String(),
			State: e.State.String(),
		}
		for i := range a.NumPaths() {
			var pts []jsonPoint
			for _, p := range a.Path(i) {
				pts = append(pts, jsonPoint{X: p.X, Y: p.Y, Color: p.Color, Width: p.Width})
			}
			ja.Paths = append(ja.Paths, pts)
		}
		out.Actions = append(out.Actions, ja)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
