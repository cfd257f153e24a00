package game

import (
	"fmt"
	"strings"
)

// EventLogEntry is one structured record of something the sim did. Tests
// assert against these instead of scraping stdout.
type EventLogEntry struct {
	Tick     int
	Unit     UnitID
	Team     Team
	Category string // COMBAT, DEATH, SPAWN, MATCH
	Key      string
	Value    string
	NumVal   float64
}

func (e EventLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-6s %-7s %-14s %s", e.Tick, fmt.Sprintf("U%d", e.Unit), e.Team, e.Key, e.Value)
}

// EventLog collects sim events in order. Nil receivers are safe so headless
// runs can switch logging off entirely.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
}

func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

func (l *EventLog) Add(e EventLogEntry) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, e)
	if l.verbose {
		fmt.Println(e.String())
	}
}

func (l *EventLog) Entries() []EventLogEntry {
	if l == nil {
		return nil
	}
	return l.entries
}

// Filter returns entries matching category, and key if non-empty.
func (l *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range l.Entries() {
		if e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterUnit returns all entries for one unit.
func (l *EventLog) FilterUnit(id UnitID) []EventLogEntry {
	var out []EventLogEntry
	for _, e := range l.Entries() {
		if e.Unit == id {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory counts entries in a category.
func (l *EventLog) CountCategory(category string) int {
	n := 0
	for _, e := range l.Entries() {
		if e.Category == category {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry with the given key for a unit.
func (l *EventLog) LastOf(id UnitID, key string) (EventLogEntry, bool) {
	entries := l.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Unit == id && entries[i].Key == key {
			return entries[i], true
		}
	}
	return EventLogEntry{}, false
}

// HasEntry reports whether any entry matches unit and key.
func (l *EventLog) HasEntry(id UnitID, key string) bool {
	_, ok := l.LastOf(id, key)
	return ok
}

// Format renders the whole log, one entry per line.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.Entries() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary renders per-category counts.
func (l *EventLog) Summary() string {
	counts := map[string]int{}
	order := []string{}
	for _, e := range l.Entries() {
		if _, ok := counts[e.Category]; !ok {
			order = append(order, e.Category)
		}
		counts[e.Category]++
	}
	var sb strings.Builder
	for _, c := range order {
		fmt.Fprintf(&sb, "%-8s %d\n", c, counts[c])
	}
	return sb.String()
}
