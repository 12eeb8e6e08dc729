package bounty

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type stubClock struct {
	now  time.Time
	mult float64
}

func (c stubClock) Now() time.Time { return c.now }

func (c stubClock) GameTimeAfterReal(d time.Duration) time.Time {
	return c.now.Add(time.Duration(float64(d) * c.mult))
}

func (c stubClock) RealTimeUntil(start, target time.Time) time.Duration {
	if !target.After(start) {
		return 0
	}
	return time.Duration(float64(target.Sub(start)) / c.mult)
}

func testClock() stubClock {
	return stubClock{
		now:  time.Date(2031, 5, 1, 12, 0, 0, 0, time.UTC),
		mult: 24,
	}
}

func testTemplate() Template {
	return Template{
		TemplateID:      "tpl-1",
		HiringFactionID: "Hollys",
		Infraction:      "Did something bad",
		Targets: RolePool{
			Min: 1, Max: 3,
			EligibleTypes:    []EnemyTypeID{"henchman_light", "henchman_medium"},
			EligibleFactions: []FactionID{"Buddys"},
		},
		Guards: RolePool{
			Min: 0, Max: 2,
			EligibleTypes: []EnemyTypeID{"guard_basic"},
		},
		EligibleScenes:   []string{"Grillhouse_2Story", "Warehouse"},
		SceneCivConfigs:  []string{"default_civ"},
		SceneEnemConfigs: []string{"default_enemy"},
		MinCompensation:  100,
		MaxCompensation:  200,
		MaxConstraints:   2,
		EligibleConstraints: []ConstraintRow{
			{ConstraintID: "a", Success: true, RewardIfSucceed: 10},
			{ConstraintID: "b", Violated: true, PenaltyIfFail: 20},
			{ConstraintID: "c", Optional: true},
		},
	}
}

func newTestGenerator(seed int64) Generator {
	return Generator{
		Rand:  rand.New(rand.NewSource(seed)),
		Clock: testClock(),
		IDs:   func() string { return "contract-1" },
	}
}

func TestGenerate_RequiresEligibleScene(t *testing.T) {
	tpl := testTemplate()
	tpl.EligibleScenes = nil

	_, err := newTestGenerator(1).Generate(&tpl)
	if !errors.Is(err, ErrNoEligibleScenes) {
		t.Fatalf("expected ErrNoEligibleScenes, got %v", err)
	}
}

func TestGenerate_DrawsWithinTemplateBounds(t *testing.T) {
	tpl := testTemplate()
	gen := newTestGenerator(42)

	for i := 0; i < 200; i++ {
		c, err := gen.Generate(&tpl)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}

		if c.Compensation < 100 || c.Compensation >= 200 {
			t.Fatalf("compensation %d outside [100,200)", c.Compensation)
		}

		targets := c.TargetIDs[SlotTargets]
		if len(targets) < 1 || len(targets) > 3 {
			t.Fatalf("target count %d outside [1,3]", len(targets))
		}
		for _, id := range targets {
			if id != "henchman_light" && id != "henchman_medium" {
				t.Fatalf("unexpected target type %q", id)
			}
		}

		guards := c.GuardIDs[SlotGuards]
		if len(guards) > 2 {
			t.Fatalf("guard count %d outside [0,2]", len(guards))
		}

		if len(c.Constraints) != 2 {
			t.Fatalf("expected 2 constraint rows, got %d", len(c.Constraints))
		}
		for _, row := range c.Constraints {
			if row.Success || row.Violated {
				t.Fatalf("constraint row %q not reset: %+v", row.ConstraintID, row)
			}
		}

		found := false
		for _, scene := range tpl.EligibleScenes {
			if c.SceneName == scene {
				found = true
			}
		}
		if !found {
			t.Fatalf("scene %q not in eligible set", c.SceneName)
		}
	}
}

func TestGenerate_EmptyPoolSpawnsNobody(t *testing.T) {
	tpl := testTemplate()
	tpl.Extras = RolePool{Min: 2, Max: 5}

	c, err := newTestGenerator(7).Generate(&tpl)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := c.ExtrasIDs[SlotExtras]; len(got) != 0 {
		t.Fatalf("expected empty extras, got %v", got)
	}
	if c.ExtrasFactions[SlotExtras] != "" {
		t.Fatalf("expected empty extras faction, got %q", c.ExtrasFactions[SlotExtras])
	}
}

func TestGenerate_FreshContractIsPending(t *testing.T) {
	tpl := testTemplate()
	c, err := newTestGenerator(3).Generate(&tpl)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.ID != "contract-1" {
		t.Fatalf("unexpected id %q", c.ID)
	}
	if c.Accepted || c.Ended || c.Outcome != OutcomePending {
		t.Fatalf("fresh contract has lifecycle state: %+v", c)
	}
	if !strings.HasPrefix(c.DisplayName, "Hollys: $") {
		t.Fatalf("unexpected display name %q", c.DisplayName)
	}
}

func TestGenerate_ExpirationUsesGameTime(t *testing.T) {
	tpl := testTemplate()
	tpl.MinHoursLimit = 4
	tpl.MaxHoursLimit = 4

	clock := testClock()
	gen := newTestGenerator(9)
	c, err := gen.Generate(&tpl)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	expires, err := c.ExpiresAt()
	if err != nil {
		t.Fatalf("parse expiration: %v", err)
	}
	want := clock.GameTimeAfterReal(4 * time.Hour)
	if !expires.Equal(want) {
		t.Fatalf("expiration %v, want %v", expires, want)
	}
}

func TestContract_ExpiredOnMalformedTimestamp(t *testing.T) {
	c := Contract{ExpirationTime: "not-a-time"}
	if !c.Expired(time.Now()) {
		t.Fatalf("malformed expiration should count as expired")
	}
}

func TestContract_CloneIsIndependent(t *testing.T) {
	tpl := testTemplate()
	c, err := newTestGenerator(11).Generate(&tpl)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	clone := c.Clone()
	if diff := cmp.Diff(c, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.TargetIDs[SlotTargets] = append(clone.TargetIDs[SlotTargets], "injected")
	clone.Constraints[0].Success = true
	clone.TargetFactions[SlotTargets] = "Other"

	if diff := cmp.Diff(c.TargetIDs, clone.TargetIDs); diff == "" {
		t.Fatalf("mutating clone populations leaked into original")
	}
	if c.Constraints[0].Success {
		t.Fatalf("mutating clone constraints leaked into original")
	}
}
