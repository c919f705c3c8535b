package entity

import "fmt"

// DefaultHistoryCapacity bounds the navigation history.
const DefaultHistoryCapacity = 25

// HistoryPolicy selects how a URL equal to the current head is recorded.
type HistoryPolicy string

const (
	// HistoryPolicyDedup drops a URL equal to the current head.
	HistoryPolicyDedup HistoryPolicy = "dedup"
	// HistoryPolicyAlways inserts every URL and truncates from the tail.
	HistoryPolicyAlways HistoryPolicy = "always"
)

// Valid reports whether p is a known policy.
func (p HistoryPolicy) Valid() bool {
	return p == HistoryPolicyDedup || p == HistoryPolicyAlways
}

// HistoryLog is a bounded, most-recent-first list of visited URLs.
type HistoryLog struct {
	entries  []string
	capacity int
	policy   HistoryPolicy
}

// NewHistoryLog creates an empty log. A non-positive capacity falls back to
// DefaultHistoryCapacity, an unknown policy to HistoryPolicyDedup.
func NewHistoryLog(capacity int, policy HistoryPolicy) *HistoryLog {
	h := &HistoryLog{}
	h.SetCapacity(capacity)
	h.SetPolicy(policy)
	return h
}

// Record inserts url at the head. Returns false when nothing changed.
func (h *HistoryLog) Record(url string) bool {
	if url == "" {
		return false
	}
	if h.policy == HistoryPolicyDedup && len(h.entries) > 0 && h.entries[0] == url {
		return false
	}
	h.entries = append(h.entries, "")
	copy(h.entries[1:], h.entries)
	h.entries[0] = url
	h.truncate()
	return true
}

// Clear empties the log.
func (h *HistoryLog) Clear() {
	h.entries = h.entries[:0]
}

// Entries returns a copy of the log, most recent first.
func (h *HistoryLog) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// At returns the entry at index.
func (h *HistoryLog) At(index int) (string, error) {
	if index < 0 || index >= len(h.entries) {
		return "", fmt.Errorf("history index %d out of range [0,%d)", index, len(h.entries))
	}
	return h.entries[index], nil
}

// Len returns the number of entries.
func (h *HistoryLog) Len() int {
	return len(h.entries)
}

// Capacity returns the maximum number of entries kept.
func (h *HistoryLog) Capacity() int {
	return h.capacity
}

// Policy returns the insert policy.
func (h *HistoryLog) Policy() HistoryPolicy {
	return h.policy
}

// SetCapacity changes the bound, dropping tail entries that no longer fit.
func (h *HistoryLog) SetCapacity(capacity int) {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	h.capacity = capacity
	h.truncate()
}

// SetPolicy changes the insert policy for future records.
func (h *HistoryLog) SetPolicy(policy HistoryPolicy) {
	if !policy.Valid() {
		policy = HistoryPolicyDedup
	}
	h.policy = policy
}

func (h *HistoryLog) truncate() {
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}
