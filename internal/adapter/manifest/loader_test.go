package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bountyverse/internal/app/catalog"
	"bountyverse/internal/domain/faction"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const factionsJSON = `[
  {"faction_id": "Grubs", "starting_rep": 5, "min_rep": -30, "max_rep": 30, "always_hostile": ["Hollys"]}
]`

const templatesJSON = `[
  {
    "template_id": "Grubs_Entry",
    "hiring_faction_id": "Grubs",
    "infraction": "Skimming",
    "targets": {"min": 1, "max": 2, "eligible_types": ["henchman_light"]},
    "eligible_scenes": ["Warehouse"],
    "min_compensation": 50,
    "max_compensation": 80
  }
]`

func TestLoad_RegistersFactionsAndTemplates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "grubs-pack", "manifest.json"),
		`{"name": "grubs-pack", "factions": ["factions.json"], "templates": ["templates.json"]}`)
	writeFile(t, filepath.Join(root, "grubs-pack", "factions.json"), factionsJSON)
	writeFile(t, filepath.Join(root, "grubs-pack", "templates.json"), templatesJSON)

	cat := catalog.New()
	stance := faction.NewStance()
	report, err := Loader{Root: root}.Load(context.Background(), cat, stance)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if report.Packages != 1 || report.Factions != 1 || report.Templates != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(report.Skipped) != 0 {
		t.Fatalf("unexpected skips %v", report.Skipped)
	}

	if got := stance.Reputation("Grubs"); got != 5 {
		t.Fatalf("loaded faction starts at %v, want starting_rep 5", got)
	}
	tpl, ok := cat.Get("Grubs_Entry")
	if !ok {
		t.Fatalf("template not registered")
	}
	if tpl.HiringFactionID != "Grubs" || tpl.Targets.Max != 2 {
		t.Fatalf("template fields wrong: %+v", tpl)
	}
}

func TestLoad_SkipsBrokenFilesAndInvalidTemplates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pack", "manifest.json"),
		`{"name": "pack", "factions": ["bad.json"], "templates": ["no-scenes.json"]}`)
	writeFile(t, filepath.Join(root, "pack", "bad.json"), `{not json`)
	writeFile(t, filepath.Join(root, "pack", "no-scenes.json"),
		`[{"template_id": "broken", "hiring_faction_id": "Grubs"}]`)

	cat := catalog.New()
	report, err := Loader{Root: root}.Load(context.Background(), cat, faction.NewStance())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if report.Factions != 0 || report.Templates != 0 {
		t.Fatalf("broken content got registered: %+v", report)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %v", report.Skipped)
	}
	if cat.Len() != 0 {
		t.Fatalf("invalid template registered")
	}
}

func TestLoad_IgnoresDirectoriesWithoutManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "not-a-pack", "readme.txt"), "hello")

	report, err := Loader{Root: root}.Load(context.Background(), catalog.New(), faction.NewStance())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if report.Packages != 0 {
		t.Fatalf("directory without manifest counted as package")
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pack", "manifest.json"),
		`{"name": "pack", "factions": ["../../outside.json"]}`)
	writeFile(t, filepath.Join(filepath.Dir(root), "outside.json"), factionsJSON)

	stance := faction.NewStance()
	report, err := Loader{Root: root}.Load(context.Background(), catalog.New(), stance)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if report.Factions != 0 {
		t.Fatalf("traversal path was read")
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("traversal not reported as skipped: %v", report.Skipped)
	}
}
