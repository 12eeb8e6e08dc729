// Package manifest loads bounty content packages from disk. Each package is
// a directory under the content root with a manifest.json naming its faction
// and template files. A bad file skips that file, not the whole load, so one
// broken package cannot take the board down.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bountyverse/internal/app/catalog"
	"bountyverse/internal/domain/bounty"
	"bountyverse/internal/domain/faction"
)

var ErrInvalidContentPath = errors.New("invalid content filepath")

const manifestFileName = "manifest.json"

// Manifest is the package descriptor, one per content directory.
type Manifest struct {
	Name      string   `json:"name"`
	Factions  []string `json:"factions"`
	Templates []string `json:"templates"`
}

// Report tallies what a load run did.
type Report struct {
	Packages  int
	Factions  int
	Templates int
	Skipped   []string
}

type Loader struct {
	Root string
}

// Load walks every package directory under the root and registers its
// factions and templates. Directories without a manifest are ignored.
func (l Loader) Load(_ context.Context, cat *catalog.Catalog, stance *faction.Stance) (Report, error) {
	report := Report{}
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return report, fmt.Errorf("read content root: %w", err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pkgDir := filepath.Join(l.Root, e.Name())
		raw, err := os.ReadFile(filepath.Join(pkgDir, manifestFileName))
		if err != nil {
			continue
		}
		var m Manifest
		if err := json.Unmarshal(raw, &m); err != nil {
			report.Skipped = append(report.Skipped, e.Name()+"/"+manifestFileName)
			continue
		}
		report.Packages++

		for _, rel := range m.Factions {
			recs, err := l.readFactions(pkgDir, rel)
			if err != nil {
				report.Skipped = append(report.Skipped, e.Name()+"/"+rel)
				continue
			}
			for _, rec := range recs {
				rec.CurrentRep = rec.StartingRep
				stance.Register(rec)
				report.Factions++
			}
		}

		for _, rel := range m.Templates {
			tpls, err := l.readTemplates(pkgDir, rel)
			if err != nil {
				report.Skipped = append(report.Skipped, e.Name()+"/"+rel)
				continue
			}
			for _, t := range tpls {
				if err := t.Validate(); err != nil {
					report.Skipped = append(report.Skipped, e.Name()+"/"+rel+":"+t.TemplateID)
					continue
				}
				cat.Register(t)
				report.Templates++
			}
		}
	}
	return report, nil
}

func (l Loader) readFactions(pkgDir, rel string) ([]faction.Record, error) {
	raw, err := l.readFile(pkgDir, rel)
	if err != nil {
		return nil, err
	}
	var recs []faction.Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (l Loader) readTemplates(pkgDir, rel string) ([]bounty.Template, error) {
	raw, err := l.readFile(pkgDir, rel)
	if err != nil {
		return nil, err
	}
	var tpls []bounty.Template
	if err := json.Unmarshal(raw, &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}

func (l Loader) readFile(pkgDir, rel string) ([]byte, error) {
	safePath, err := secureJoin(pkgDir, rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(safePath)
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", ErrInvalidContentPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrInvalidContentPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if target != rootAbs && !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidContentPath
	}
	return target, nil
}
