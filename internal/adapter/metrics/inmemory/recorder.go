package inmemory

import (
	"sync"

	"bountyverse/internal/domain/bounty"
)

type Snapshot struct {
	Generated  uint64            `json:"generated"`
	Accepted   uint64            `json:"accepted"`
	Resolved   uint64            `json:"resolved"`
	Expired    uint64            `json:"expired"`
	ByTemplate map[string]uint64 `json:"by_template"`
	ByOutcome  map[string]uint64 `json:"by_outcome"`
}

type Recorder struct {
	mu         sync.Mutex
	generated  uint64
	accepted   uint64
	resolved   uint64
	expired    uint64
	byTemplate map[string]uint64
	byOutcome  map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTemplate: map[string]uint64{},
		byOutcome:  map[string]uint64{},
	}
}

func (r *Recorder) RecordGenerated(templateID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generated++
	r.byTemplate[templateID]++
}

func (r *Recorder) RecordAccepted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted++
}

func (r *Recorder) RecordResolved(outcome bounty.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved++
	r.byOutcome[string(outcome)]++
}

func (r *Recorder) RecordExpired() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expired++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Generated:  r.generated,
		Accepted:   r.accepted,
		Resolved:   r.resolved,
		Expired:    r.expired,
		ByTemplate: make(map[string]uint64, len(r.byTemplate)),
		ByOutcome:  make(map[string]uint64, len(r.byOutcome)),
	}
	for k, v := range r.byTemplate {
		out.ByTemplate[k] = v
	}
	for k, v := range r.byOutcome {
		out.ByOutcome[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
