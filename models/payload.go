package models

// Payload is the envelope wrapping every list response of the API.
type Payload[T any] struct {
	Payload []T `json:"payload"`
}

// NewPayload wraps items, never encoding a null list.
func NewPayload[T any](items []T) Payload[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Payload[T]{Payload: items}
}
