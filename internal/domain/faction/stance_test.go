package faction

import (
	"strings"
	"testing"

	"bountyverse/internal/domain/bounty"
)

func hollys() Record {
	return Record{
		FactionID:     "Hollys",
		CurrentRep:    0,
		MinRep:        -50,
		MaxRep:        50,
		AlwaysHostile: []bounty.FactionID{"Buddys"},
	}
}

func TestAdjust_ClampsToBounds(t *testing.T) {
	s := NewStance()
	s.Register(hollys())

	if !s.Adjust("Hollys", 200) {
		t.Fatalf("adjust known faction should succeed")
	}
	if got := s.Reputation("Hollys"); got != 50 {
		t.Fatalf("reputation %v, want clamped 50", got)
	}

	s.Adjust("Hollys", -500)
	if got := s.Reputation("Hollys"); got != -50 {
		t.Fatalf("reputation %v, want clamped -50", got)
	}
}

func TestAdjust_UnknownFactionFails(t *testing.T) {
	s := NewStance()
	if s.Adjust("Nobody", 1) {
		t.Fatalf("adjust unknown faction should fail")
	}
	if got := s.Reputation("Nobody"); got != 0 {
		t.Fatalf("unknown faction reputation %v, want 0", got)
	}
}

func TestRegister_MergePreservesCurrentRep(t *testing.T) {
	s := NewStance()
	s.Register(hollys())
	s.Adjust("Hollys", 10)

	update := hollys()
	update.MaxRep = 80
	update.AlwaysHostile = []bounty.FactionID{"Buddys", "Grubs"}
	s.Register(update)

	if got := s.Reputation("Hollys"); got != 10 {
		t.Fatalf("re-register reset reputation to %v", got)
	}
	if !s.HostileTowards("Hollys", "Grubs") {
		t.Fatalf("merged hostility missing")
	}
	if !s.HostileTowards("Hollys", "Buddys") {
		t.Fatalf("existing hostility lost")
	}
}

func TestHostileTowards(t *testing.T) {
	s := NewStance()
	s.Register(hollys())

	if !s.HostileTowards("Hollys", "Buddys") {
		t.Fatalf("expected hostility Hollys->Buddys")
	}
	if s.HostileTowards("Buddys", "Hollys") {
		t.Fatalf("hostility is directional; Buddys is unregistered")
	}
}

func TestSummary_ListsEveryFaction(t *testing.T) {
	s := NewStance()
	s.RegisterDefaults()

	got := s.Summary()
	for _, want := range []string{
		"Faction ID: Hollys",
		"Faction ID: Buddys",
		"Always Hostile Towards: Buddys",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	s := NewStance()
	s.Register(hollys())
	s.Adjust("Hollys", 25)

	restored := NewStance()
	restored.Restore(s.Snapshot())

	if got := restored.Reputation("Hollys"); got != 25 {
		t.Fatalf("restored reputation %v, want 25", got)
	}
	if !restored.Known("Hollys") {
		t.Fatalf("restored stance lost faction")
	}
}
