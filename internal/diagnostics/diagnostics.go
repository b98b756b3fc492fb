package diagnostics

import (
	"sync"
	"time"
)

// Class groups diagnostics by what went wrong.
type Class string

const (
	// ClassUnusableCollaborator means the ledger is unbound or the instrument is invalid.
	ClassUnusableCollaborator Class = "unusable_collaborator"
	// ClassInvalidInput means a risk or price that is not a positive finite number.
	ClassInvalidInput Class = "invalid_input"
	// ClassInfeasibleResult means no affordable quantity exists.
	ClassInfeasibleResult Class = "infeasible_result"
	// ClassPolicyFailure means a sizing rule could not be produced, e.g. a failed clone.
	ClassPolicyFailure Class = "policy_failure"
)

var AllClasses = []Class{
	ClassUnusableCollaborator,
	ClassInvalidInput,
	ClassInfeasibleResult,
	ClassPolicyFailure,
}

// Diagnostic is a single reported sizing failure.
type Diagnostic struct {
	// Timestamp is the market time of the sizing request.
	Timestamp time.Time
	// Symbol is the instrument symbol, empty when there is none.
	Symbol string
	// Operation is the sizing operation that reported, e.g. "buy".
	Operation string
	Class     Class
	Message   string
	// Fields contains optional structured key-value data.
	Fields map[string]string
}

// Recorder is the interface for storing sizing diagnostics.
type Recorder interface {
	// Record stores a diagnostic.
	Record(entry Diagnostic) error
	// GetDiagnostics retrieves all stored diagnostics.
	GetDiagnostics() ([]Diagnostic, error)
}

// MemoryRecorder keeps diagnostics in memory. It is safe for concurrent use.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Diagnostic
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		mu:      sync.Mutex{},
		entries: []Diagnostic{},
	}
}

// Record implements Recorder.
func (m *MemoryRecorder) Record(entry Diagnostic) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)

	return nil
}

// GetDiagnostics implements Recorder. The returned slice is a copy.
func (m *MemoryRecorder) GetDiagnostics() ([]Diagnostic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Diagnostic, len(m.entries))
	copy(out, m.entries)

	return out, nil
}

// CountByClass returns how many diagnostics of the given class were recorded.
func (m *MemoryRecorder) CountByClass(class Class) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0

	for _, entry := range m.entries {
		if entry.Class == class {
			count++
		}
	}

	return count
}

// Reset drops every stored diagnostic.
func (m *MemoryRecorder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = []Diagnostic{}
}
