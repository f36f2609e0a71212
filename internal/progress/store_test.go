package progress

import (
	"errors"
	"testing"
	"time"
)

type failingKV struct{ err error }

func (f failingKV) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(string, string) error         { return f.err }

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	cur := &now
	return NewStoreWithClock(NewMemoryKV(), func() time.Time { return *cur }), cur
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s, now := newTestStore(t)
	s.SaveProgress("js-1", 42.5, 120, false)

	r, ok := s.GetProgress("js-1")
	if !ok {
		t.Fatalf("expected record after save")
	}
	if r.CurrentTime != 42.5 || r.Duration != 120 {
		t.Fatalf("round trip mismatch: %+v", r)
	}
	if r.LastWatched != now.UnixMilli() {
		t.Fatalf("lastWatched not stamped: %d", r.LastWatched)
	}
	if r.Completed {
		t.Fatalf("completed should default false")
	}
}

func TestGetProgressAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	if _, ok := s.GetProgress("nope"); ok {
		t.Fatalf("expected absent record")
	}
	if pct := s.GetCompletionPercentage("nope"); pct != 0 {
		t.Fatalf("expected 0%% for absent record, got %v", pct)
	}
}

func TestCompletionPercentageClamped(t *testing.T) {
	s, _ := newTestStore(t)
	s.SaveProgress("v", 500, 100, false) // currentTime > duration: store trusts caller
	if pct := s.GetCompletionPercentage("v"); pct != 100 {
		t.Fatalf("expected clamp to 100, got %v", pct)
	}
}

func TestCompletionPercentageZeroDuration(t *testing.T) {
	s, _ := newTestStore(t)
	s.SaveProgress("v", 10, 0, false)
	if pct := s.GetCompletionPercentage("v"); pct != 0 {
		t.Fatalf("expected 0 for zero duration, got %v", pct)
	}
}

func TestIsCompletedFromThreshold(t *testing.T) {
	s, _ := newTestStore(t)
	s.SaveProgress("v", 91, 100, false)
	if !s.IsCompleted("v") {
		t.Fatalf("expected completed at >=90%% watched without explicit flag")
	}
	s.SaveProgress("w", 89, 100, false)
	if s.IsCompleted("w") {
		t.Fatalf("did not expect completed below 90%%")
	}
}

func TestMarkCompletedPinsRecord(t *testing.T) {
	s, _ := newTestStore(t)
	s.MarkCompleted("v", 300)
	r, ok := s.GetProgress("v")
	if !ok || !r.Completed {
		t.Fatalf("expected explicit completed record, got %+v", r)
	}
	if r.CurrentTime != 300 || r.Duration != 300 {
		t.Fatalf("expected currentTime pinned to duration, got %+v", r)
	}
}

func TestCompletedFlagMonotonic(t *testing.T) {
	s, _ := newTestStore(t)
	s.MarkCompleted("v", 300)
	// Rewatching from the start must not clear completion.
	s.SaveProgress("v", 5, 300, false)
	r, _ := s.GetProgress("v")
	if !r.Completed {
		t.Fatalf("completed flag must survive later saves")
	}
	// Only removal erases it.
	s.RemoveProgress("v")
	if _, ok := s.GetProgress("v"); ok {
		t.Fatalf("expected record removed")
	}
}

func TestCleanupOldProgress(t *testing.T) {
	s, cur := newTestStore(t)
	s.SaveProgress("old", 10, 100, false)

	*cur = cur.Add(31 * 24 * time.Hour)
	s.SaveProgress("fresh", 10, 100, false)

	if removed := s.CleanupOldProgress(); removed != 1 {
		t.Fatalf("expected 1 record removed, got %d", removed)
	}
	if _, ok := s.GetProgress("old"); ok {
		t.Fatalf("stale record should be gone")
	}
	if _, ok := s.GetProgress("fresh"); !ok {
		t.Fatalf("fresh record should remain")
	}
}

func TestStorageFailuresAreSilent(t *testing.T) {
	s := NewStore(failingKV{err: errors.New("storage unavailable")})
	// None of these may panic or error; reads degrade to empty.
	s.SaveProgress("v", 10, 100, false)
	s.MarkCompleted("v", 100)
	s.RemoveProgress("v")
	if got := s.GetAllProgress(); len(got) != 0 {
		t.Fatalf("expected empty read on storage failure, got %v", got)
	}
	if s.IsCompleted("v") {
		t.Fatalf("expected not completed on storage failure")
	}
}

func TestCorruptPayloadDegradesToEmpty(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(StorageKey, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewStore(kv)
	if got := s.GetAllProgress(); len(got) != 0 {
		t.Fatalf("expected empty map for corrupt payload, got %v", got)
	}
	// A save after corruption starts a fresh mapping.
	s.SaveProgress("v", 1, 2, false)
	if _, ok := s.GetProgress("v"); !ok {
		t.Fatalf("expected save to recover from corrupt payload")
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{754, "12:34"},
	}
	for _, c := range cases {
		if got := FormatTime(c.in); got != c.want {
			t.Fatalf("FormatTime(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("new file kv: %v", err)
	}
	if _, ok, err := kv.Get(StorageKey); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}
	if err := kv.Set(StorageKey, `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(StorageKey)
	if err != nil || !ok || v != `{"a":1}` {
		t.Fatalf("get after set: v=%q ok=%v err=%v", v, ok, err)
	}
}
