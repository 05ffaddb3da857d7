// Package generation defines the boundary between the application core
// and the external AI content generator, following the same hexagonal
// split as the persistence interfaces: the core depends on the Generator
// interface here, and internal/platform/gemini provides the real
// implementation.
package generation
