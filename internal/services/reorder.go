package services

import "itinerary-service/internal/domain"

// Reorder moves the element at from to position to and returns a new slice.
// Indices must be in range; the input is never modified.
func Reorder[T any](list []T, from, to int) []T {
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)

	moved := list[from]
	out = append(out, moved)
	copy(out[to+1:], out[to:len(out)-1])
	out[to] = moved

	return out
}

// MoveBetweenDays takes the item at sourceIndex out of source, stamps it with
// destDay and inserts it into dest at destIndex. Both results are new slices.
func MoveBetweenDays(
	source, dest []domain.Item,
	sourceIndex, destIndex, destDay int,
) (newSource, newDest []domain.Item) {
	item := source[sourceIndex]
	item.Day = destDay

	newSource = make([]domain.Item, 0, len(source)-1)
	newSource = append(newSource, source[:sourceIndex]...)
	newSource = append(newSource, source[sourceIndex+1:]...)

	newDest = make([]domain.Item, 0, len(dest)+1)
	newDest = append(newDest, dest[:destIndex]...)
	newDest = append(newDest, item)
	newDest = append(newDest, dest[destIndex:]...)

	return newSource, newDest
}
