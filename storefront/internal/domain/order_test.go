package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(steps []TimelineStep) []OrderStatus {
	out := make([]OrderStatus, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Status)
	}
	return out
}

func TestBuildTimeline_ReadyForPickup(t *testing.T) {
	order := Order{ID: "o1", OrderStatus: StatusReadyForPickup, StatusOccurredAt: "2025-05-01T12:30:00Z"}

	timeline := BuildTimeline(order)

	require.Len(t, timeline, 4)
	assert.Equal(t, []OrderStatus{StatusPlaced, StatusAccepted, StatusReadyForPickup, StatusPickedUp}, statuses(timeline))
	assert.Nil(t, timeline[0].At)
	assert.Nil(t, timeline[1].At)
	require.NotNil(t, timeline[2].At)
	assert.Equal(t, "2025-05-01T12:30:00Z", timeline[2].At.UTC().Format("2006-01-02T15:04:05Z07:00"))
	assert.Nil(t, timeline[3].At)

	current := 0
	for _, step := range timeline {
		if step.Current {
			current++
		}
	}
	assert.Equal(t, 1, current)
	assert.True(t, timeline[0].Completed)
	assert.True(t, timeline[1].Completed)
	assert.False(t, timeline[3].Completed)
}

func TestBuildTimeline_Rejected(t *testing.T) {
	order := Order{OrderStatus: StatusRejected, StatusOccurredAt: "2025-05-01T12:30:00Z", RejectedMsg: "Out of ingredients"}

	timeline := BuildTimeline(order)

	require.Len(t, timeline, 2)
	assert.Equal(t, StatusPlaced, timeline[0].Status)
	assert.Nil(t, timeline[0].At)
	assert.Equal(t, StatusRejected, timeline[1].Status)
	assert.NotNil(t, timeline[1].At)
	assert.Equal(t, "Out of ingredients", timeline[1].Message)
}

func TestBuildTimeline_Declined(t *testing.T) {
	tests := []struct {
		name    string
		reason  string
		message string
	}{
		{name: "timeout code", reason: ReasonResponseTimeExceeded, message: "The restaurant didn't respond in time."},
		{name: "passthrough", reason: "Kitchen closed", message: "Kitchen closed"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			timeline := BuildTimeline(Order{OrderStatus: StatusDeclined, DeclinedMsg: testCase.reason})
			require.Len(t, timeline, 2)
			assert.Equal(t, StatusDeclined, timeline[1].Status)
			assert.Equal(t, testCase.message, timeline[1].Message)
		})
	}
}

func TestBuildTimeline_Placed(t *testing.T) {
	timeline := BuildTimeline(Order{OrderStatus: StatusPlaced, StatusOccurredAt: "2025-05-01T10:00:00"})

	require.Len(t, timeline, 2)
	assert.NotNil(t, timeline[0].At)
	assert.True(t, timeline[0].Current)
	assert.Equal(t, StatusAccepted, timeline[1].Status)
	assert.Nil(t, timeline[1].At)
}

func TestBuildTimeline_DeliveredHasNoPendingStep(t *testing.T) {
	timeline := BuildTimeline(Order{OrderStatus: StatusDelivered, StatusOccurredAt: "2025-05-01T10:00:00Z"})

	assert.Equal(t, HappyPath, statuses(timeline))
	assert.NotNil(t, timeline[4].At)
}

func TestBuildTimeline_UnknownStatus(t *testing.T) {
	timeline := BuildTimeline(Order{OrderStatus: "LOST"})

	require.Len(t, timeline, 1)
	assert.Equal(t, StatusPlaced, timeline[0].Status)
}

func TestAvailableActions(t *testing.T) {
	assert.Equal(t, []OwnerAction{ActionAccept, ActionReject}, StatusPlaced.AvailableActions())
	assert.Equal(t, []OwnerAction{ActionReady}, StatusAccepted.AvailableActions())
	assert.Empty(t, StatusReadyForPickup.AvailableActions())
	assert.Empty(t, StatusRejected.AvailableActions())
	assert.Equal(t, StatusRejected, ActionReject.Target())
}
