// Package session keeps the append-only log of world events for one area
// visit. The log only accepts events while a session is active and fans each
// accepted event out to subscribers synchronously, in append order.
package session

import "bountyverse/internal/domain/bounty"

// Subscriber receives every recorded event immediately after it is appended.
type Subscriber func(event bounty.SessionEvent)

type Log struct {
	events      []bounty.SessionEvent
	active      bool
	subscribers []Subscriber
}

func NewLog() *Log {
	return &Log{events: []bounty.SessionEvent{}}
}

// Start clears any leftover events and begins accepting new ones.
func (l *Log) Start() {
	l.events = l.events[:0]
	l.active = true
}

// Wipe stops accepting events, clears the log, and drops all subscribers so
// a later, unrelated session cannot reach stale listeners.
func (l *Log) Wipe() {
	l.active = false
	l.events = l.events[:0]
	l.subscribers = nil
}

func (l *Log) Active() bool {
	return l.active
}

// Record appends the event if a session is active and notifies subscribers in
// append order. Events recorded outside a session are dropped.
func (l *Log) Record(event bounty.SessionEvent) bool {
	if !l.active {
		return false
	}
	l.events = append(l.events, event)
	for _, sub := range l.subscribers {
		sub(event)
	}
	return true
}

// Subscribe registers a listener for subsequently recorded events. Listeners
// last until Wipe.
func (l *Log) Subscribe(sub Subscriber) {
	l.subscribers = append(l.subscribers, sub)
}

// Events returns a snapshot of the session so far.
func (l *Log) Events() []bounty.SessionEvent {
	return append([]bounty.SessionEvent(nil), l.events...)
}

func (l *Log) Len() int {
	return len(l.events)
}
