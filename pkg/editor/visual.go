package editor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/animator/pkg/animation"
)

// Visual is a headless animation target that stores the last value of
// every property it receives.
type Visual struct {
	Name   string
	values map[string]string
	order  []string
}

var _ animation.Target = (*Visual)(nil)

// NewVisual returns an empty visual.
func NewVisual(name string) *Visual {
	return &Visual{Name: name, values: make(map[string]string)}
}

// SetProperty stores value under name.
func (v *Visual) SetProperty(name, value string) error {
	if name == "" {
		return fmt.Errorf("visual %s: empty property name", v.Name)
	}
	if _, ok := v.values[name]; !ok {
		v.order = append(v.order, name)
	}
	v.values[name] = value
	return nil
}

// Property returns the stored value of name.
func (v *Visual) Property(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Properties returns the stored values in order of first assignment.
func (v *Visual) Properties() []animation.PropertyValue {
	out := make([]animation.PropertyValue, 0, len(v.order))
	for _, name := range v.order {
		out = append(out, animation.PropertyValue{Property: name, Value: v.values[name]})
	}
	return out
}

// String renders the properties as "name=value" pairs.
func (v *Visual) String() string {
	parts := make([]string, 0, len(v.order))
	for _, p := range v.Properties() {
		parts = append(parts, p.Property+"="+p.Value)
	}
	return v.Name + "{" + strings.Join(parts, " ") + "}"
}

// Names returns the property names in sorted order.
func (v *Visual) Names() []string {
	names := slices.Clone(v.order)
	slices.Sort(names)
	return names
}
