// Package mocks provides hand-rolled test doubles for the store and
// generation interfaces. The fakes are in-memory implementations that
// also record enough call history for tests to assert ordering
// invariants (modules persisted before the course that references them).
package mocks
