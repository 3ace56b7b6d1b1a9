package ports

// Revalidator receives cache-invalidation hints after successful mutations.
// Hints are fire-and-forget: implementations must never block the caller and
// may drop hints under pressure.
type Revalidator interface {
	Hint(keys ...string)
}
