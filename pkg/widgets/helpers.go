package widgets

import "github.com/yalem-ui/yalem/pkg/core"

// Padded wraps child in a Padding with the given insets.
func Padded(insets EdgeInsets, child core.Widget) *Padding {
	return NewPaddingInsets(insets).Child(child).Build()
}

// Centered wraps child in a Center on both axes.
func Centered(child core.Widget) *Center {
	return NewCenter().Direction(core.Both).Child(child).Build()
}

// Column stacks children in a List.
func Column(children ...core.Widget) *List {
	return NewList().Children(children...).Build()
}
