package domain

import "time"

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusAccepted       OrderStatus = "ACCEPTED"
	StatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusRejected       OrderStatus = "REJECTED"
	StatusDeclined       OrderStatus = "DECLINED"
)

// HappyPath is the ordered sequence an order moves through when nothing goes wrong.
var HappyPath = []OrderStatus{
	StatusPlaced,
	StatusAccepted,
	StatusReadyForPickup,
	StatusPickedUp,
	StatusDelivered,
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusDeclined || s == StatusDelivered
}

func (s OrderStatus) index() int {
	for i, st := range HappyPath {
		if st == s {
			return i
		}
	}
	return -1
}

type OwnerAction string

const (
	ActionAccept OwnerAction = "accept"
	ActionReject OwnerAction = "reject"
	ActionReady  OwnerAction = "ready"
)

var ownerTransitions = map[OwnerAction]struct{ From, To OrderStatus }{
	ActionAccept: {StatusPlaced, StatusAccepted},
	ActionReject: {StatusPlaced, StatusRejected},
	ActionReady:  {StatusAccepted, StatusReadyForPickup},
}

// AvailableActions lists the owner transitions allowed from s.
func (s OrderStatus) AvailableActions() []OwnerAction {
	var actions []OwnerAction
	for _, a := range []OwnerAction{ActionAccept, ActionReject, ActionReady} {
		if ownerTransitions[a].From == s {
			actions = append(actions, a)
		}
	}
	return actions
}

// Target is the status an owner action leads to.
func (a OwnerAction) Target() OrderStatus {
	return ownerTransitions[a].To
}

const ReasonResponseTimeExceeded = "RESPONSE_TIME_EXCEEDED"

func DeclineMessage(reason string) string {
	if reason == ReasonResponseTimeExceeded {
		return "The restaurant didn't respond in time."
	}
	return reason
}

type TimelineStep struct {
	Status    OrderStatus `json:"status"`
	At        *time.Time  `json:"at,omitempty"`
	Message   string      `json:"message,omitempty"`
	Completed bool        `json:"completed"`
	Current   bool        `json:"current"`
}

// BuildTimeline reconstructs the display history from the single status the
// server reports. Only the current step carries a timestamp.
func BuildTimeline(order Order) []TimelineStep {
	var at *time.Time
	if t, ok := ParseTimestamp(order.StatusOccurredAt); ok {
		at = &t
	}

	current := order.OrderStatus
	placed := TimelineStep{Status: StatusPlaced}
	if current == StatusPlaced {
		placed.At = at
		placed.Current = true
	} else {
		placed.Completed = true
	}
	timeline := []TimelineStep{placed}

	switch current {
	case StatusRejected:
		return append(timeline, TimelineStep{Status: current, At: at, Message: order.RejectedMsg, Current: true})
	case StatusDeclined:
		return append(timeline, TimelineStep{Status: current, At: at, Message: DeclineMessage(order.DeclinedMsg), Current: true})
	}

	reached := current.index()
	if reached < 0 {
		timeline[0].Completed = false
		return timeline
	}

	for i := 1; i <= reached; i++ {
		step := TimelineStep{Status: HappyPath[i], Completed: true}
		if i == reached {
			step.At = at
			step.Completed = false
			step.Current = true
		}
		timeline = append(timeline, step)
	}

	if reached+1 < len(HappyPath) {
		timeline = append(timeline, TimelineStep{Status: HappyPath[reached+1]})
	}
	return timeline
}
