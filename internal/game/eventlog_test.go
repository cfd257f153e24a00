package game

import (
	"strings"
	"testing"
)

func TestEventLogFilterAndCount(t *testing.T) {
	log := NewEventLog(false)
	log.Add(EventLogEntry{Tick: 1, Unit: 3, Team: TeamPlayer, Category: "COMBAT", Key: "fired"})
	log.Add(EventLogEntry{Tick: 2, Unit: 3, Team: TeamPlayer, Category: "COMBAT", Key: "damaged"})
	log.Add(EventLogEntry{Tick: 3, Unit: 4, Team: TeamEnemy, Category: "DEATH", Key: "died"})

	if n := log.CountCategory("COMBAT"); n != 2 {
		t.Errorf("expected 2 combat entries, got %d", n)
	}
	if got := log.Filter("COMBAT", "fired"); len(got) != 1 || got[0].Tick != 1 {
		t.Errorf("unexpected filter result %v", got)
	}
	if got := log.FilterUnit(3); len(got) != 2 {
		t.Errorf("expected 2 entries for U3, got %d", len(got))
	}
	if !log.HasEntry(4, "died") {
		t.Error("expected U4's death to be recorded")
	}
	if log.HasEntry(3, "died") {
		t.Error("U3 never died")
	}
}

func TestEventLogLastOf(t *testing.T) {
	log := NewEventLog(false)
	log.Add(EventLogEntry{Tick: 1, Unit: 3, Key: "fired", NumVal: 10})
	log.Add(EventLogEntry{Tick: 5, Unit: 3, Key: "fired", NumVal: 25})

	e, ok := log.LastOf(3, "fired")
	if !ok || e.Tick != 5 || e.NumVal != 25 {
		t.Errorf("expected the tick-5 entry, got %+v ok=%v", e, ok)
	}
}

func TestEventLogNilIsSafe(t *testing.T) {
	var log *EventLog
	log.Add(EventLogEntry{Tick: 1, Key: "fired"})
	if log.Entries() != nil {
		t.Error("nil log holds nothing")
	}
	if log.CountCategory("COMBAT") != 0 {
		t.Error("nil log counts nothing")
	}
}

func TestEventLogFormat(t *testing.T) {
	log := NewEventLog(false)
	log.Add(EventLogEntry{Tick: 42, Unit: 3, Team: TeamPlayer, Category: "COMBAT", Key: "fired", Value: "at U7"})

	s := log.Format()
	if !strings.Contains(s, "[T=0042]") || !strings.Contains(s, "U3") || !strings.Contains(s, "at U7") {
		t.Errorf("unexpected formatted entry: %q", s)
	}
}

func TestEventLogSummary(t *testing.T) {
	log := NewEventLog(false)
	log.Add(EventLogEntry{Category: "SPAWN", Key: "wave"})
	log.Add(EventLogEntry{Category: "SPAWN", Key: "produced"})
	log.Add(EventLogEntry{Category: "DEATH", Key: "died"})

	s := log.Summary()
	if !strings.Contains(s, "SPAWN") || !strings.Contains(s, "2") {
		t.Errorf("summary missing spawn count: %q", s)
	}
}
