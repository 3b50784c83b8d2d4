package model

import "time"

const (
	EventProductSaved   = "product.saved"
	EventProductDeleted = "product.deleted"
	EventOrderCreated   = "OrderCreated"
)

// ProductEvent is published after a product is written to the catalog API.
type ProductEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	ProductID string          `json:"product_id"`
	Summary   *ProductSummary `json:"summary,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	ID    string             `json:"id"`
	Items []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string  `json:"product_id"`
	BatchID   string  `json:"batch_id,omitempty"`
	Quantity  float64 `json:"quantity"`
}
