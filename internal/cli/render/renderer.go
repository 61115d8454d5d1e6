package render

// Renderer writes a use case result to an output stream
type Renderer[T any] interface {
	Render(result T) error
}
