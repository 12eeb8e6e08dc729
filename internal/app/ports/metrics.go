package ports

import "bountyverse/internal/domain/bounty"

type BoardMetrics interface {
	RecordGenerated(templateID string)
	RecordAccepted()
	RecordResolved(outcome bounty.Outcome)
	RecordExpired()
}
