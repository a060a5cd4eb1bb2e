package core

import (
	"sync"
	"testing"
)

func TestGoRunsFunction(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	Go(func() {
		defer wg.Done()
		ran = true
	})
	wg.Wait()

	if !ran {
		t.Error("Go did not run the function")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetCrashRestore(func() { called = true })
	defer SetCrashRestore(nil)

	HandleCrash(nil)
	if called {
		t.Error("restore ran without a panic value")
	}
}
