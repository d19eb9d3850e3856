// Package pipeline is a small generic sequence-of-stages runner, adapted
// from the non-generic Pipeline/Processor pair the host toolchain uses to
// thread a parse result through lexer/parser/semantic stages. Here the
// stages thread an ingestion Context instead, but the shape — an ordered
// list of Processors, each transforming and returning the same context — is
// unchanged.
package pipeline

// Processor transforms a T, typically appending diagnostics/errors rather
// than stopping the pipeline.
type Processor[T any] interface {
	Process(T) T
}

// ProcessorFunc adapts a plain function to a Processor.
type ProcessorFunc[T any] func(T) T

func (f ProcessorFunc[T]) Process(ctx T) T { return f(ctx) }

// Pipeline runs a fixed sequence of Processors over one context value.
type Pipeline[T any] struct {
	stages []Processor[T]
}

func New[T any](stages ...Processor[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Run feeds initial through every stage in order. A stage that encounters a
// problem is expected to record it on the context (e.g. append to an Errors
// field) and return a context later stages can still run against —
// continuing on errors lets a caller collect diagnostics from every stage
// instead of only the first one that fails.
func (p *Pipeline[T]) Run(initial T) T {
	ctx := initial
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
