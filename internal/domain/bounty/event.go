package bounty

type EventKind string

const (
	EventKill          EventKind = "kill"
	EventAlert         EventKind = "alert"
	EventShotFired     EventKind = "shot_fired"
	EventFactionChange EventKind = "faction_change"
	EventGeneric       EventKind = "generic"
)

type DamageClass string

const (
	DamageProjectile DamageClass = "projectile"
	DamageMelee      DamageClass = "melee"
	DamageExplosive  DamageClass = "explosive"
	DamageEnviron    DamageClass = "environment"
	DamageUnknown    DamageClass = "unknown"
)

type KillEvent struct {
	AgentID   string      `json:"agent_id"`
	DiedFrom  DamageClass `json:"died_from"`
	KillerIFF int         `json:"killer_iff,omitempty"`
}

type AlertEvent struct {
	AgentID string  `json:"agent_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
}

type ShotFiredEvent struct {
	WeaponID string `json:"weapon_id"`
	ByPlayer bool   `json:"by_player"`
}

type FactionChangeEvent struct {
	AgentID string `json:"agent_id"`
	IFF     int    `json:"iff"`
}

// SessionEvent is a tagged record of one world occurrence. Exactly the
// payload matching Kind is set; the rest stay nil. Immutable once recorded.
type SessionEvent struct {
	Kind          EventKind           `json:"kind"`
	Kill          *KillEvent          `json:"kill,omitempty"`
	Alert         *AlertEvent         `json:"alert,omitempty"`
	ShotFired     *ShotFiredEvent     `json:"shot_fired,omitempty"`
	FactionChange *FactionChangeEvent `json:"faction_change,omitempty"`
	// Generic carries modder-defined payloads, serialized by the sender.
	Generic string `json:"generic,omitempty"`
}

func NewKillEvent(agentID string, diedFrom DamageClass) SessionEvent {
	return SessionEvent{Kind: EventKill, Kill: &KillEvent{AgentID: agentID, DiedFrom: diedFrom}}
}

func NewAlertEvent(agentID string, x, y, z float64) SessionEvent {
	return SessionEvent{Kind: EventAlert, Alert: &AlertEvent{AgentID: agentID, X: x, Y: y, Z: z}}
}

func NewShotFiredEvent(weaponID string, byPlayer bool) SessionEvent {
	return SessionEvent{Kind: EventShotFired, ShotFired: &ShotFiredEvent{WeaponID: weaponID, ByPlayer: byPlayer}}
}

func NewFactionChangeEvent(agentID string, iff int) SessionEvent {
	return SessionEvent{Kind: EventFactionChange, FactionChange: &FactionChangeEvent{AgentID: agentID, IFF: iff}}
}

func NewGenericEvent(contents string) SessionEvent {
	return SessionEvent{Kind: EventGeneric, Generic: contents}
}
