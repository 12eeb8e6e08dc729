package bounty

import (
	"fmt"
	"strings"
	"time"
)

// SummaryClock is the slice of the in-game clock contract summaries need to
// render time-until-expiration in real-world terms.
type SummaryClock interface {
	Now() time.Time
	RealTimeUntil(start, target time.Time) time.Duration
}

// Summary renders the human-readable contract sheet shown on the wrist UI.
func (c *Contract) Summary(clock SummaryClock) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Contract: %s\n", c.DisplayName)
	fmt.Fprintf(&sb, "Hiring Faction: %s\n", c.HiringFactionID)
	fmt.Fprintf(&sb, "Target: %s %s\n", c.TargetFirstName, c.TargetLastName)
	fmt.Fprintf(&sb, "Infraction: %s\n", c.Infraction)
	fmt.Fprintf(&sb, "Scene: %s\n", c.SceneName)

	if clock != nil {
		if expires, err := c.ExpiresAt(); err == nil {
			now := clock.Now()
			if expires.After(now) {
				left := clock.RealTimeUntil(now, expires)
				h := int(left.Hours())
				m := int(left.Minutes()) % 60
				s := int(left.Seconds()) % 60
				fmt.Fprintf(&sb, "Time until expiration: %dh %dm %ds\n", h, m, s)
			}
		}
	}

	fmt.Fprintf(&sb, "Compensation: $%d\n", c.Compensation)

	if len(c.ReputationRequirements) > 0 {
		sb.WriteString("Reputation Requirements:\n")
		for _, req := range c.ReputationRequirements {
			fmt.Fprintf(&sb, "  - %s: %g to %g\n", req.FactionID, req.MinRep, req.MaxRep)
		}
	}

	if len(c.ReputationRewards) > 0 {
		sb.WriteString("Reputation Rewards:\n")
		for _, reward := range c.ReputationRewards {
			fmt.Fprintf(&sb, "  - %s: %+.1f\n", reward.FactionID, reward.Rep)
		}
	}

	required := make([]ConstraintRow, 0, len(c.Constraints))
	optional := make([]ConstraintRow, 0, len(c.Constraints))
	for _, row := range c.Constraints {
		if row.Optional {
			optional = append(optional, row)
		} else {
			required = append(required, row)
		}
	}

	if len(required) > 0 {
		sb.WriteString("Required Conditions:\n")
		for _, row := range required {
			penalty := ""
			if row.PenaltyIfFail > 0 {
				penalty = fmt.Sprintf(" -$%d", row.PenaltyIfFail)
			}
			fmt.Fprintf(&sb, "  - %s (%s)%s\n", row.ConstraintID, rowStatus(row), penalty)
		}
	}
	if len(optional) > 0 {
		sb.WriteString("Optional Bonuses:\n")
		for _, row := range optional {
			bonus := ""
			if row.RewardIfSucceed > 0 {
				bonus = fmt.Sprintf(" +$%d", row.RewardIfSucceed)
			}
			fmt.Fprintf(&sb, "  - %s (%s)%s\n", row.ConstraintID, rowStatus(row), bonus)
		}
	}

	return sb.String()
}

func rowStatus(row ConstraintRow) string {
	switch {
	case row.Success:
		return "Completed"
	case row.Violated:
		return "Failed"
	default:
		return "Pending"
	}
}
