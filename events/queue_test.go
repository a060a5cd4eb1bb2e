package events

import (
	"sync"
	"testing"
)

// TestEventQueueBasic tests push and consume in FIFO order
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventFoodEaten, Tick: 1, FoodID: 10})
	eq.Push(GameEvent{Type: EventAgentDied, Tick: 2, AgentID: 3})
	eq.Push(GameEvent{Type: EventFoodSpawned, Tick: 3, Count: 2})

	evs := eq.Consume()
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}

	want := []EventType{EventFoodEaten, EventAgentDied, EventFoodSpawned}
	for i, ev := range evs {
		if ev.Type != want[i] || ev.Tick != uint64(i+1) {
			t.Errorf("event %d = %v@%d, want %v@%d", i, ev.Type, ev.Tick, want[i], i+1)
		}
	}

	if again := eq.Consume(); len(again) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(again))
	}
}

// TestEventQueueConcurrent tests concurrent producers
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	producers := 10
	perProducer := 10

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				eq.Push(GameEvent{Type: EventFoodEaten, Score: id*100 + j})
			}
		}(i)
	}
	wg.Wait()

	evs := eq.Consume()
	if len(evs) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(evs))
	}

	seen := make(map[int]bool)
	for _, ev := range evs {
		if seen[ev.Score] {
			t.Errorf("Duplicate payload found: %d", ev.Score)
		}
		seen[ev.Score] = true
	}

	if eq.Len() != 0 {
		t.Errorf("Expected queue to be empty, got length %d", eq.Len())
	}
}

// TestEventQueueOverflow tests that the oldest events are dropped when full
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()

	for i := 0; i < 300; i++ {
		eq.Push(GameEvent{Type: EventFoodSpawned, Count: i})
	}

	evs := eq.Consume()
	if len(evs) != 256 {
		t.Fatalf("Expected 256 events, got %d", len(evs))
	}
	if evs[0].Count != 44 {
		t.Errorf("first surviving event = %d, want 44", evs[0].Count)
	}
	for i := 1; i < len(evs); i++ {
		if evs[i].Count != evs[i-1].Count+1 {
			t.Errorf("Events not sequential: events[%d]=%d, events[%d]=%d", i-1, evs[i-1].Count, i, evs[i].Count)
		}
	}
}

type recorder struct {
	types []EventType
	got   []GameEvent
}

func (r *recorder) HandleEvent(ev GameEvent) { r.got = append(r.got, ev) }
func (r *recorder) EventTypes() []EventType  { return r.types }

func TestRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter(eq)

	deaths := &recorder{types: []EventType{EventAgentDied, EventSimulationEnded}}
	eaten := &recorder{types: []EventType{EventFoodEaten}}
	router.Register(deaths)
	router.Register(eaten)

	var order []EventType
	router.Register(HandlerFunc{
		Types: []EventType{EventFoodEaten, EventAgentDied},
		Fn:    func(ev GameEvent) { order = append(order, ev.Type) },
	})

	eq.Push(GameEvent{Type: EventFoodEaten})
	eq.Push(GameEvent{Type: EventAgentDied})
	eq.Push(GameEvent{Type: EventEffectStarted})
	eq.Push(GameEvent{Type: EventSimulationEnded})

	if n := router.DispatchAll(); n != 4 {
		t.Errorf("DispatchAll() = %d, want 4", n)
	}
	if len(deaths.got) != 2 {
		t.Errorf("death handler got %d events, want 2", len(deaths.got))
	}
	if len(eaten.got) != 1 {
		t.Errorf("food handler got %d events, want 1", len(eaten.got))
	}
	if len(order) != 2 || order[0] != EventFoodEaten || order[1] != EventAgentDied {
		t.Errorf("dispatch order = %v, want [FoodEaten AgentDied]", order)
	}
	if router.HandlerCount(EventFoodEaten) != 2 {
		t.Errorf("HandlerCount(FoodEaten) = %d, want 2", router.HandlerCount(EventFoodEaten))
	}
}
