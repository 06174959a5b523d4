package outbound

// ObjectIDSource yields the identifier embedded in the keys of one invocation's objects.
type ObjectIDSource interface {
	NextID() string
}
