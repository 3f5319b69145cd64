package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophworker/internal/logging"
	"github.com/stretchr/testify/assert"
)

func newTestAllocator(store *memStore) *WorkerIDAllocator {
	return NewWorkerIDAllocator(nil, store, "HM_", 4, logging.Nop{})
}

func TestWorkerIDAllocator_Next(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "empty store", existing: nil, want: "HM_0001"},
		{name: "sequential", existing: []string{"HM_0001", "HM_0002", "HM_0003", "HM_0004", "HM_0005", "HM_0006", "HM_0007"}, want: "HM_0008"},
		{name: "gap uses max", existing: []string{"HM_0002", "HM_0009"}, want: "HM_0010"},
		{name: "non-numeric suffix", existing: []string{"HM_abc"}, want: "HM_0001"},
		{name: "empty suffix", existing: []string{"HM_"}, want: "HM_0001"},
		{name: "leading digits only", existing: []string{"HM_12x"}, want: "HM_0013"},
		{name: "grows past pad width", existing: []string{"HM_9999"}, want: "HM_10000"},
		{name: "wide id sorts above narrow", existing: []string{"HM_9999", "HM_10000"}, want: "HM_10001"},
		// Length decides first: a malformed id wins only when no well-formed id is longer.
		{name: "shorter malformed id is ignored", existing: []string{"HM_0007", "HM_abc"}, want: "HM_0008"},
		{name: "same-length malformed id wins", existing: []string{"HM_0007", "HM_abcd"}, want: "HM_0001"},
		{name: "longer malformed id wins", existing: []string{"HM_0007", "HM_abcde"}, want: "HM_0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			for i, id := range tt.existing {
				store.addWorker(string(rune('a'+i)), id)
			}

			got := newTestAllocator(store).Next(context.Background())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkerIDAllocator_FallbackOnQueryError(t *testing.T) {
	store := newMemStore()
	store.latestErr = errors.New("store unavailable")

	a := newTestAllocator(store)
	a.now = func() time.Time { return time.UnixMilli(1760000000123) }

	assert.Equal(t, "HM_1760000000123", a.Next(context.Background()))
}

func TestWorkerIDAllocator_FallbackMatchesPattern(t *testing.T) {
	store := newMemStore()
	store.latestErr = errors.New("store unavailable")

	got := newTestAllocator(store).Next(context.Background())
	assert.Regexp(t, regexp.MustCompile(`^HM_\d{13,}$`), got)
}

func TestParseWorkerNumber(t *testing.T) {
	tests := []struct {
		id, prefix string
		want       int
	}{
		{"HM_0007", "HM_", 7},
		{"HM_0000", "HM_", 0},
		{"HM_abc", "HM_", 0},
		{"HM_", "HM_", 0},
		{"HM_42abc", "HM_", 42},
		{"0012", "HM_", 12},
		{"WK-0100", "WK-", 100},
		{"HM_99999999999999999999999", "HM_", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWorkerNumber(tt.id, tt.prefix), tt.id)
	}
}

func TestFormatWorkerID(t *testing.T) {
	assert.Equal(t, "HM_0001", FormatWorkerID("HM_", 4, 1))
	assert.Equal(t, "HM_9999", FormatWorkerID("HM_", 4, 9999))
	assert.Equal(t, "HM_10000", FormatWorkerID("HM_", 4, 10000))
	assert.Equal(t, "WK-000042", FormatWorkerID("WK-", 6, 42))
}
