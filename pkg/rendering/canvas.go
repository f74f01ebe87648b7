package rendering

// Canvas renders drawing commands. Hosts implement it over their own
// drawing surface; [PictureRecorder] implements it for recording.
type Canvas interface {
	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawText draws a measured text layout with its top-left corner at position.
	DrawText(layout *TextLayout, position Offset)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
