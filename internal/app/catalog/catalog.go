// Package catalog holds the registered contract templates and answers
// eligibility queries for the board's refill logic.
package catalog

import (
	"math/rand"

	"bountyverse/internal/domain/bounty"
)

type Catalog struct {
	templates []bounty.Template
	index     map[string]int
}

func New() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Register adds a template; re-registration by id replaces the previous
// entry. Templates are immutable once registered.
func (c *Catalog) Register(t bounty.Template) {
	if i, ok := c.index[t.TemplateID]; ok {
		c.templates[i] = t
		return
	}
	c.templates = append(c.templates, t)
	c.index[t.TemplateID] = len(c.templates) - 1
}

func (c *Catalog) Get(id string) (bounty.Template, bool) {
	i, ok := c.index[id]
	if !ok {
		return bounty.Template{}, false
	}
	return c.templates[i], true
}

func (c *Catalog) Len() int {
	return len(c.templates)
}

// PickForFaction draws one template uniformly among those the given faction
// offers to a player at the given reputation. Returns false when none fit.
func (c *Catalog) PickForFaction(factionID bounty.FactionID, reputation float64, rng *rand.Rand) (bounty.Template, bool) {
	eligible := make([]int, 0, len(c.templates))
	for i := range c.templates {
		if c.templates[i].EligibleFor(factionID, reputation) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return bounty.Template{}, false
	}
	return c.templates[eligible[rng.Intn(len(eligible))]], true
}

// HiringFactions lists the distinct factions with at least one registered
// template, in first-registration order.
func (c *Catalog) HiringFactions() []bounty.FactionID {
	seen := map[bounty.FactionID]bool{}
	out := []bounty.FactionID{}
	for i := range c.templates {
		id := c.templates[i].HiringFactionID
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
