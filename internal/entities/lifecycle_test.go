package entities

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func dueOn(year int, month time.Month, day int) null.Time {
	return null.TimeFrom(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func TestComputedOverdue(t *testing.T) {
	cases := []struct {
		name     string
		request  MaintenanceRequest
		expected bool
	}{
		{
			name:     "past due and not completed",
			request:  MaintenanceRequest{Status: StatusNew, DueDate: dueOn(2025, 6, 14)},
			expected: true,
		},
		{
			name:     "past due but completed",
			request:  MaintenanceRequest{Status: StatusCompleted, DueDate: dueOn(2025, 6, 14)},
			expected: false,
		},
		{
			name:     "due today is not overdue",
			request:  MaintenanceRequest{Status: StatusNew, DueDate: dueOn(2025, 6, 15)},
			expected: false,
		},
		{
			name:     "no due date",
			request:  MaintenanceRequest{Status: StatusNew},
			expected: false,
		},
		{
			name:     "stored Overdue status does not force the flag",
			request:  MaintenanceRequest{Status: StatusOverdue, DueDate: dueOn(2025, 6, 20)},
			expected: false,
		},
		{
			name:     "stored Overdue status with past date",
			request:  MaintenanceRequest{Status: StatusOverdue, DueDate: dueOn(2025, 6, 1)},
			expected: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputedOverdue(tc.request, testNow))
		})
	}
}

func TestSortForBoard(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: 1, Priority: PriorityLow, DueDate: dueOn(2025, 6, 1)},
		{ID: 2, Priority: "Urgent"},
		{ID: 3, Priority: PriorityCritical},
		{ID: 4, Priority: PriorityHigh, DueDate: dueOn(2025, 6, 20)},
		{ID: 5, Priority: PriorityHigh, DueDate: dueOn(2025, 6, 10)},
		{ID: 6, Priority: PriorityHigh},
		{ID: 7, Priority: PriorityMedium},
	}

	SortForBoard(requests)

	ids := make([]uint64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}
	// Critical first, then High by due date with the undated one last,
	// unrecognized priorities after Low.
	assert.Equal(t, []uint64{3, 5, 4, 6, 7, 1, 2}, ids)
}

func TestSortForBoardStableOnTies(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: 10, Priority: PriorityMedium, DueDate: dueOn(2025, 6, 5)},
		{ID: 11, Priority: PriorityMedium, DueDate: dueOn(2025, 6, 5)},
		{ID: 12, Priority: PriorityMedium, DueDate: dueOn(2025, 6, 5)},
	}

	SortForBoard(requests)

	assert.Equal(t, uint64(10), requests[0].ID)
	assert.Equal(t, uint64(11), requests[1].ID)
	assert.Equal(t, uint64(12), requests[2].ID)
}

func TestPartitionByStatus(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: 1, Status: StatusInProgress},
		{ID: 2, Status: StatusNew},
		{ID: 3, Status: StatusNew},
		{ID: 4, Status: StatusOverdue},
		{ID: 5, Status: "Archived"},
	}

	columns := PartitionByStatus(requests)

	require.Len(t, columns, 4)
	assert.Equal(t, StatusNew, columns[0].Status)
	assert.Equal(t, StatusInProgress, columns[1].Status)
	assert.Equal(t, StatusCompleted, columns[2].Status)
	assert.Equal(t, StatusOverdue, columns[3].Status)

	require.Len(t, columns[0].Requests, 2)
	assert.Equal(t, uint64(2), columns[0].Requests[0].ID)
	assert.Equal(t, uint64(3), columns[0].Requests[1].ID)

	require.Len(t, columns[1].Requests, 1)
	assert.Empty(t, columns[2].Requests)
	require.Len(t, columns[3].Requests, 1)
}

func TestPartitionByStatusEmptyInput(t *testing.T) {
	columns := PartitionByStatus(nil)

	require.Len(t, columns, 4)
	for _, col := range columns {
		assert.NotNil(t, col.Requests)
		assert.Empty(t, col.Requests)
	}
}

func TestGroupByDueDate(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: 1, DueDate: dueOn(2025, 6, 10)},
		{ID: 2, DueDate: dueOn(2025, 6, 10)},
		{ID: 3, DueDate: dueOn(2025, 6, 11)},
		{ID: 4},
	}

	grouped := GroupByDueDate(requests)

	require.Len(t, grouped, 2)
	assert.Len(t, grouped["2025-06-10"], 2)
	assert.Len(t, grouped["2025-06-11"], 1)
}

func TestUpcomingRequests(t *testing.T) {
	requests := []MaintenanceRequest{
		{ID: 1, DueDate: dueOn(2025, 6, 14)},
		{ID: 2, DueDate: dueOn(2025, 6, 15)},
		{ID: 3, DueDate: dueOn(2025, 6, 30)},
		{ID: 4, DueDate: dueOn(2025, 6, 16)},
		{ID: 5},
	}

	upcoming := UpcomingRequests(requests, testNow, 10)

	ids := make([]uint64, len(upcoming))
	for i, r := range upcoming {
		ids[i] = r.ID
	}
	// Yesterday's request and the undated one are excluded; today's
	// counts as upcoming.
	assert.Equal(t, []uint64{2, 4, 3}, ids)
}

func TestUpcomingRequestsCap(t *testing.T) {
	requests := make([]MaintenanceRequest, 15)
	for i := range requests {
		requests[i] = MaintenanceRequest{
			ID:      uint64(i + 1),
			DueDate: dueOn(2025, 7, i+1),
		}
	}

	upcoming := UpcomingRequests(requests, testNow, 10)

	require.Len(t, upcoming, 10)
	assert.Equal(t, uint64(1), upcoming[0].ID)
	assert.Equal(t, uint64(10), upcoming[9].ID)
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityRank(PriorityCritical), PriorityRank(PriorityHigh))
	assert.Less(t, PriorityRank(PriorityHigh), PriorityRank(PriorityMedium))
	assert.Less(t, PriorityRank(PriorityMedium), PriorityRank(PriorityLow))
	assert.Less(t, PriorityRank(PriorityLow), PriorityRank("Whenever"))
}
