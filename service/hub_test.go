package service

import (
	"errors"
	"slices"
	"testing"
)

type fakeService struct {
	name     string
	deps     []string
	startErr error
	log      *[]string
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(...any) error      { *f.log = append(*f.log, "init "+f.name); return nil }
func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}
func (f *fakeService) Stop() error { *f.log = append(*f.log, "stop "+f.name); return nil }

func TestHubLifecycleOrder(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "scheduler", deps: []string{"audio", "feed"}, log: &calls})
	h.Register(&fakeService{name: "audio", log: &calls})
	h.Register(&fakeService{name: "feed", log: &calls})

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	h.StopAll()

	want := []string{
		"init audio", "init feed", "init scheduler",
		"start audio", "start feed", "start scheduler",
		"stop scheduler", "stop feed", "stop audio",
	}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v\nwant %v", calls, want)
	}
}

func TestHubStartRollback(t *testing.T) {
	var calls []string
	h := NewHub()
	h.Register(&fakeService{name: "audio", log: &calls})
	h.Register(&fakeService{name: "feed", deps: []string{"audio"}, startErr: errors.New("address in use"), log: &calls})

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll: %v", err)
	}
	if err := h.StartAll(); err == nil {
		t.Fatal("StartAll succeeded, want feed failure")
	}
	if calls[len(calls)-1] != "stop audio" {
		t.Errorf("calls = %v, want audio stopped on rollback", calls)
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var calls []string

	missing := NewHub()
	missing.Register(&fakeService{name: "feed", deps: []string{"nope"}, log: &calls})
	if err := missing.InitAll(); err == nil {
		t.Error("InitAll with unregistered dependency succeeded")
	}

	cycle := NewHub()
	cycle.Register(&fakeService{name: "a", deps: []string{"b"}, log: &calls})
	cycle.Register(&fakeService{name: "b", deps: []string{"a"}, log: &calls})
	if err := cycle.InitAll(); err == nil {
		t.Error("InitAll with a cycle succeeded")
	}

	dup := NewHub()
	dup.Register(&fakeService{name: "a", log: &calls})
	if err := dup.Register(&fakeService{name: "a", log: &calls}); err == nil {
		t.Error("duplicate Register succeeded")
	}
}
