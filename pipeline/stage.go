package pipeline

// Stage is one typed step of a pipeline: it consumes I and produces O,
// sharing a Context across the whole run. Stage k's O must be stage k+1's I
// — the type parameters enforce that adjacency at compile time instead of at
// runtime, matching §9's preference for static composition.
type Stage[I, O any] interface {
	Process(input I, ctx *Context) (O, error)
}

// StageFunc adapts a plain function to the Stage interface, the way the
// standard library's http.HandlerFunc adapts a function to http.Handler.
type StageFunc[I, O any] func(input I, ctx *Context) (O, error)

// Process calls f.
func (f StageFunc[I, O]) Process(input I, ctx *Context) (O, error) {
	return f(input, ctx)
}

// Pipeline is a fully composed chain from I to O.
type Pipeline[I, O any] interface {
	Run(input I, ctx *Context) (O, error)
}

// pair is the "(head, tail)" composition cell from §9: head produces the
// intermediate type M that tail, itself a Pipeline, consumes.
type pair[I, M, O any] struct {
	head Stage[I, M]
	tail Pipeline[M, O]
}

func (p pair[I, M, O]) Run(input I, ctx *Context) (O, error) {
	mid, err := p.head.Process(input, ctx)
	if err != nil {
		var zero O
		return zero, err
	}
	return p.tail.Run(mid, ctx)
}

// identitySink is the terminal stage every composed chain ends in: it
// returns its input unchanged.
type identitySink[T any] struct{}

func (identitySink[T]) Run(input T, ctx *Context) (T, error) {
	return input, nil
}

// Identity returns the terminal sink pipeline for type T.
func Identity[T any]() Pipeline[T, T] {
	return identitySink[T]{}
}

// Append composes head in front of tail, producing a pipeline from head's
// input type to tail's output type. This is the one composition primitive
// every multi-stage pipeline in this module is built from.
func Append[I, M, O any](head Stage[I, M], tail Pipeline[M, O]) Pipeline[I, O] {
	return pair[I, M, O]{head: head, tail: tail}
}

// New wraps a single stage as a complete, runnable pipeline.
func New[I, O any](stage Stage[I, O]) Pipeline[I, O] {
	return Append[I, O, O](stage, Identity[O]())
}
