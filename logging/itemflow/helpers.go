package itemflow

import (
	"context"

	"packrat/logging"
)

const (
	// EventTransferCompleted is emitted when a stack moves between inventories.
	EventTransferCompleted logging.EventType = "itemflow.transfer_completed"
	// EventTransferRejected is emitted when a destination slot refuses a stack.
	EventTransferRejected logging.EventType = "itemflow.transfer_rejected"
	// EventStackSplit is emitted when a stack is divided across slots.
	EventStackSplit logging.EventType = "itemflow.stack_split"
	// EventItemUsed is emitted when one unit is consumed from a stack.
	EventItemUsed logging.EventType = "itemflow.item_used"
	// EventInventoryDrained is emitted when an inventory is emptied wholesale.
	EventInventoryDrained logging.EventType = "itemflow.inventory_drained"
)

// TransferCompletedPayload describes a successful stack move.
type TransferCompletedPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	FromSlot int    `json:"fromSlot"`
	ToSlot   int    `json:"toSlot"`
}

// TransferRejectedPayload describes a refused stack move.
type TransferRejectedPayload struct {
	Name     string `json:"name"`
	FromSlot int    `json:"fromSlot"`
	ToSlot   int    `json:"toSlot"`
	Occupant string `json:"occupant,omitempty"`
}

// StackSplitPayload describes a stack division.
type StackSplitPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	FromSlot int    `json:"fromSlot"`
	ToSlot   int    `json:"toSlot"`
}

// ItemUsedPayload describes a single-unit consumption.
type ItemUsedPayload struct {
	Name string `json:"name"`
	Slot int    `json:"slot"`
}

// InventoryDrainedPayload describes a wholesale drain.
type InventoryDrainedPayload struct {
	Stacks   int `json:"stacks"`
	Quantity int `json:"quantity"`
}

// TransferCompleted publishes a successful transfer event.
func TransferCompleted(ctx context.Context, pub logging.Publisher, step uint64, actor logging.EntityRef, payload TransferCompletedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTransferCompleted,
		Step:     step,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
		Extra:    extra,
	})
}

// TransferRejected publishes a refused transfer event.
func TransferRejected(ctx context.Context, pub logging.Publisher, step uint64, actor logging.EntityRef, payload TransferRejectedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTransferRejected,
		Step:     step,
		Actor:    actor,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryInventory,
		Payload:  payload,
		Extra:    extra,
	})
}

// StackSplit publishes a stack division event.
func StackSplit(ctx context.Context, pub logging.Publisher, step uint64, actor logging.EntityRef, payload StackSplitPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventStackSplit,
		Step:     step,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
		Extra:    extra,
	})
}

// ItemUsed publishes a consumption event.
func ItemUsed(ctx context.Context, pub logging.Publisher, step uint64, actor logging.EntityRef, payload ItemUsedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventItemUsed,
		Step:     step,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
		Extra:    extra,
	})
}

// InventoryDrained publishes a wholesale drain event.
func InventoryDrained(ctx context.Context, pub logging.Publisher, step uint64, actor logging.EntityRef, payload InventoryDrainedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventInventoryDrained,
		Step:     step,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryInventory,
		Payload:  payload,
		Extra:    extra,
	})
}
