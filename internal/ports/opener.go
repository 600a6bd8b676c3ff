package ports

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string)
}
