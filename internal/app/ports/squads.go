package ports

import (
	"context"

	"bountyverse/internal/domain/bounty"
)

// SquadProvider is the spawner collaborator's reporting side: which agent
// instances it created for a contract's squad in the current session. A
// contract without a roster is not in play and must be left untouched by the
// final evaluation pass.
type SquadProvider interface {
	RosterForContract(ctx context.Context, contractID string) (bounty.SquadRoster, bool)
}
