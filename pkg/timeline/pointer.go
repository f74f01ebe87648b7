package timeline

import (
	"fmt"

	"github.com/go-drift/animator/pkg/rendering"
)

// PointerKind identifies the type of a pointer event.
type PointerKind int

const (
	PointerPressed PointerKind = iota
	PointerMoved
	PointerReleased
	// PointerLeft is sent when the pointer leaves the widget bounds.
	PointerLeft
)

func (k PointerKind) String() string {
	switch k {
	case PointerPressed:
		return "pressed"
	case PointerMoved:
		return "moved"
	case PointerReleased:
		return "released"
	case PointerLeft:
		return "left"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(k))
	}
}

// Buttons is a bit set of pressed pointer buttons.
type Buttons int

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// Has reports whether every button in b is pressed.
func (bs Buttons) Has(b Buttons) bool {
	return b != 0 && bs&b == b
}

// Modifiers is a bit set of held keyboard modifiers.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// Has reports whether every modifier in m is held.
func (ms Modifiers) Has(m Modifiers) bool {
	return m != 0 && ms&m == m
}

// PointerEvent is a pointer event in widget-local coordinates.
type PointerEvent struct {
	Kind      PointerKind
	Position  rendering.Offset
	Buttons   Buttons
	Modifiers Modifiers
}

// Cursor is the pointer cursor the widget asks its host to show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorSizeWestEast
	CursorCross
	CursorHand
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorSizeWestEast:
		return "size-we"
	case CursorCross:
		return "cross"
	case CursorHand:
		return "hand"
	default:
		return fmt.Sprintf("Cursor(%d)", int(c))
	}
}
