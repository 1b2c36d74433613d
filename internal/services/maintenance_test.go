package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

func TestCreateRequestDefaults(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	equipment := env.mustCreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name:     "Compressor",
		Category: entities.CategoryMachinery,
		Status:   entities.EquipmentActive,
	})

	created, err := env.maintenance.CreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: equipment.ID,
		Title:       "Pressure check",
		Priority:    entities.PriorityMedium,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusNew, created.Status)
	assert.Equal(t, entities.FrequencyNone, created.Frequency)
	assert.False(t, created.IsRecurring)
	assert.Equal(t, "Compressor", created.EquipmentName)
}

func TestCreateRequestWithExplicitStatus(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "Backlog import",
		Priority:    entities.PriorityLow,
		Status:      entities.StatusOverdue,
	})

	// "Overdue" is an ordinary settable status, independent of dates.
	assert.Equal(t, entities.StatusOverdue, created.Status)
	assert.False(t, created.ComputedOverdue)
}

func TestComputedOverdueInResponses(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)
	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "Late job",
		Priority:    entities.PriorityHigh,
		DueDate:     yesterday,
	})

	assert.Equal(t, entities.StatusNew, created.Status)
	assert.True(t, created.ComputedOverdue)

	// Completing it clears the display signal even though the date is
	// still in the past.
	completed, err := env.maintenance.UpdateRequestStatus(ctx, created.ID, dto.UpdateMaintenanceStatusDTO{
		Status: entities.StatusCompleted,
	})
	require.NoError(t, err)
	assert.False(t, completed.ComputedOverdue)
}

func TestUpdateRequestReplacesAllFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID:   1,
		Title:         "Inspect belts",
		Priority:      entities.PriorityMedium,
		AssignedTo:    "Jamie",
		EstimatedCost: null.Float64From(120),
	})

	updated, err := env.maintenance.UpdateRequest(ctx, created.ID, dto.UpdateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "Inspect and replace belts",
		Priority:    entities.PriorityHigh,
		Status:      entities.StatusInProgress,
		ActualCost:  null.Float64From(180.456),
	})
	require.NoError(t, err)

	assert.Equal(t, "Inspect and replace belts", updated.Title)
	assert.Equal(t, entities.StatusInProgress, updated.Status)
	require.NotNil(t, updated.ActualCost)
	assert.InDelta(t, 180.46, *updated.ActualCost, 0.001)
	// Full replace: the omitted assignee and estimate are gone.
	assert.Empty(t, updated.AssignedTo)
	assert.Nil(t, updated.EstimatedCost)
}

func TestUpdateRequestStatusIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "Tighten bolts",
		Priority:    entities.PriorityLow,
	})

	for i := 0; i < 2; i++ {
		res, err := env.maintenance.UpdateRequestStatus(ctx, created.ID, dto.UpdateMaintenanceStatusDTO{
			Status: entities.StatusNew,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.StatusNew, res.Status)
	}
}

func TestUpdateRequestStatusAnyTransition(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "Recalibrate",
		Priority:    entities.PriorityMedium,
	})

	// No transition graph: Completed back to New is allowed.
	for _, status := range []string{entities.StatusCompleted, entities.StatusNew, entities.StatusOverdue} {
		res, err := env.maintenance.UpdateRequestStatus(ctx, created.ID, dto.UpdateMaintenanceStatusDTO{Status: status})
		require.NoError(t, err)
		assert.Equal(t, status, res.Status)
	}
}

func TestDeleteRequest(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	created := env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
		EquipmentID: 1,
		Title:       "One-off",
		Priority:    entities.PriorityLow,
	})

	require.NoError(t, env.maintenance.DeleteRequest(ctx, created.ID))
	_, err := env.maintenance.FindRequest(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetKanbanBoard(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "A", Priority: entities.PriorityLow})
	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "B", Priority: entities.PriorityCritical})
	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "C", Priority: entities.PriorityMedium, Status: entities.StatusInProgress})

	board, err := env.maintenance.GetKanbanBoard(ctx, types.Filter{})
	require.NoError(t, err)

	require.Len(t, board.Columns, 4)
	assert.Equal(t, entities.StatusNew, board.Columns[0].Status)
	require.Len(t, board.Columns[0].Requests, 2)
	// Board order inside a column: Critical before Low.
	assert.Equal(t, "B", board.Columns[0].Requests[0].Title)
	assert.Equal(t, "A", board.Columns[0].Requests[1].Title)

	require.Len(t, board.Columns[1].Requests, 1)
	assert.Empty(t, board.Columns[2].Requests)
	assert.Empty(t, board.Columns[3].Requests)
}

func TestGetCalendar(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	day1 := time.Now().AddDate(0, 0, 3).Format(utils.DateLayout)
	day2 := time.Now().AddDate(0, 0, 5).Format(utils.DateLayout)

	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "Day1 a", Priority: entities.PriorityLow, DueDate: day1})
	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "Day1 b", Priority: entities.PriorityHigh, DueDate: day1})
	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "Day2", Priority: entities.PriorityLow, DueDate: day2})
	env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{EquipmentID: 1, Title: "Undated", Priority: entities.PriorityLow})

	calendar, err := env.maintenance.GetCalendar(ctx)
	require.NoError(t, err)

	require.Len(t, calendar.Days, 2)
	assert.Equal(t, day1, calendar.Days[0].Date)
	assert.Len(t, calendar.Days[0].Requests, 2)
	assert.Equal(t, day2, calendar.Days[1].Date)

	// The undated request never reaches the calendar.
	assert.Len(t, calendar.Upcoming, 3)
}

func TestGetCalendarUpcomingCap(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		env.mustCreateRequest(ctx, dto.CreateMaintenanceRequestDTO{
			EquipmentID: 1,
			Title:       "Scheduled",
			Priority:    entities.PriorityLow,
			DueDate:     time.Now().AddDate(0, 0, i).Format(utils.DateLayout),
		})
	}

	calendar, err := env.maintenance.GetCalendar(ctx)
	require.NoError(t, err)

	assert.Len(t, calendar.Days, 12)
	assert.Len(t, calendar.Upcoming, 10)
}
