package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the sys_sequences upsert: every call bumps the
// counter by the increment argument (1 for the strict path).
type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64
	calls        int
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	var increment int64 = 1
	if len(args) == 2 {
		if val, ok := args[1].(int64); ok {
			increment = val
		}
	}

	m.currentValue += increment
	m.calls++

	return &mockRow{val: m.currentValue}
}

var fixedPeriod = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestGetNextNumber_Strict(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("ORC")

	num, err := svc.GetNextNumber(ctx, cfg, nil, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORC-2026-00001" {
		t.Errorf("expected ORC-2026-00001, got %s", num)
	}

	num, err = svc.GetNextNumber(ctx, cfg, nil, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORC-2026-00002" {
		t.Errorf("expected ORC-2026-00002, got %s", num)
	}

	if q.calls != 2 {
		t.Errorf("strict strategy should hit the DB per number, got %d calls", q.calls)
	}
}

func TestGetNextNumber_Cached(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("ORC")

	opts := &Options{
		Strategy:  StrategyCached,
		RangeSize: 10,
	}

	// First call reserves the range 1..10 in one round trip.
	num, err := svc.GetNextNumber(ctx, cfg, opts, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORC-2026-00001" {
		t.Errorf("expected ORC-2026-00001, got %s", num)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value 10, got %d", q.currentValue)
	}

	// Second number comes from memory without touching the DB.
	num, err = svc.GetNextNumber(ctx, cfg, opts, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORC-2026-00002" {
		t.Errorf("expected ORC-2026-00002, got %s", num)
	}
	if q.currentValue != 10 {
		t.Errorf("expected DB value to stay 10, got %d", q.currentValue)
	}

	// Exhausting the range triggers the next reservation.
	for i := 0; i < 8; i++ {
		if _, err := svc.GetNextNumber(ctx, cfg, opts, fixedPeriod); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	num, err = svc.GetNextNumber(ctx, cfg, opts, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "ORC-2026-00011" {
		t.Errorf("expected ORC-2026-00011, got %s", num)
	}
	if q.currentValue != 20 {
		t.Errorf("expected DB value 20, got %d", q.currentValue)
	}
}

func TestGetNextNumber_NoYear(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)

	cfg := Config{Prefix: "SEQ", PadWidth: 3, ResetPeriod: "never"}
	num, err := svc.GetNextNumber(context.Background(), cfg, nil, fixedPeriod)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "SEQ-001" {
		t.Errorf("expected SEQ-001, got %s", num)
	}
}

func TestBuildKey(t *testing.T) {
	tests := []struct {
		resetPeriod string
		want        string
	}{
		{"year", "ORC_2026"},
		{"month", "ORC_2026_03"},
		{"never", "ORC"},
		{"", "ORC"},
	}

	for _, tt := range tests {
		cfg := Config{Prefix: "ORC", ResetPeriod: tt.resetPeriod}
		if got := buildKey(cfg, fixedPeriod); got != tt.want {
			t.Errorf("buildKey(%q) = %q, want %q", tt.resetPeriod, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"ORC-2026-00042", 42},
		{"SEQ-007", 7},
		{"garbage", -1},
		{"ORC-", -1},
		{"ORC-abc", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
