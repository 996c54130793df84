package dashboard

import (
	"errors"
	"testing"
)

func TestControllerInitialLoad(t *testing.T) {
	t.Parallel()

	c := NewController()
	if c.Status() != StatusLoading {
		t.Fatalf("initial status = %v, want loading", c.Status())
	}

	if got := c.StartLoad(); got != StatusLoading {
		t.Errorf("StartLoad with no data = %v, want loading", got)
	}

	vm := newViewModel()
	c.Complete(vm)
	if c.Status() != StatusReady {
		t.Errorf("status after Complete = %v, want ready", c.Status())
	}
	if c.ViewModel() != vm {
		t.Error("ViewModel not swapped in")
	}
}

func TestControllerRefreshKeepsData(t *testing.T) {
	t.Parallel()

	c := NewController()
	first := newViewModel()
	c.Complete(first)

	// refresh passes through refreshing, not loading, and prior data
	// remains visible until the new model lands
	if got := c.StartLoad(); got != StatusRefreshing {
		t.Errorf("StartLoad from ready = %v, want refreshing", got)
	}
	if c.ViewModel() != first {
		t.Error("prior data cleared during refresh")
	}

	second := newViewModel()
	c.Complete(second)
	if c.ViewModel() != second {
		t.Error("new data not swapped in after refresh")
	}
}

func TestControllerFailureAndRetry(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.StartLoad()
	c.Fail(errors.New("network down"))

	if c.Status() != StatusError {
		t.Fatalf("status = %v, want error", c.Status())
	}
	if c.Err() == nil {
		t.Fatal("Err() should report the failure")
	}

	// retry with no prior data re-enters loading
	if got := c.StartLoad(); got != StatusLoading {
		t.Errorf("retry with no data = %v, want loading", got)
	}
}

func TestControllerFailedRefreshKeepsPriorData(t *testing.T) {
	t.Parallel()

	c := NewController()
	vm := newViewModel()
	c.Complete(vm)

	c.StartLoad()
	c.Fail(errors.New("flaky network"))

	if c.ViewModel() != vm {
		t.Error("prior data lost on failed refresh")
	}

	// and the retry is a refresh, since data is still on screen
	if got := c.StartLoad(); got != StatusRefreshing {
		t.Errorf("retry with prior data = %v, want refreshing", got)
	}
}
