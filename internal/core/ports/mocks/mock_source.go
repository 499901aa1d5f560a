package mocks

import (
	"context"
	"sync"

	"github.com/kamal-hamza/skillsheet/internal/core/ports"
)

// MockModuleSource is a mock implementation of the ModuleSource interface for testing
type MockModuleSource struct {
	mu      sync.RWMutex
	modules []ports.Module
	err     error
	calls   int
}

// NewMockModuleSource creates a new mock source
func NewMockModuleSource() *MockModuleSource {
	return &MockModuleSource{}
}

// Add appends a raw module
func (m *MockModuleSource) Add(path, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.modules = append(m.modules, ports.Module{Path: path, Data: []byte(data)})
}

// SetError makes every subsequent Modules call fail
func (m *MockModuleSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

// Calls returns how many times Modules was called
func (m *MockModuleSource) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.calls
}

// Modules returns the added modules in insertion order
func (m *MockModuleSource) Modules(ctx context.Context) ([]ports.Module, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	out := make([]ports.Module, len(m.modules))
	copy(out, m.modules)
	return out, nil
}

var _ ports.ModuleSource = (*MockModuleSource)(nil)
