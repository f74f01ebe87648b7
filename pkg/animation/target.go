package animation

// Target receives interpolated property values from a bound animation.
type Target interface {
	SetProperty(name, value string) error
}

// TargetFunc adapts a function to a [Target].
type TargetFunc func(name, value string) error

// SetProperty calls f(name, value).
func (f TargetFunc) SetProperty(name, value string) error {
	return f(name, value)
}
