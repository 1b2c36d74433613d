package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

type CreateMaintenanceRequestDTO struct {
	EquipmentID   uint64       `json:"equipment_id" validate:"required"`
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Status        string       `json:"status" validate:"omitempty,oneof=New 'In Progress' Completed Overdue"`
	AssignedTo    string       `json:"assigned_to"`
	RequesterName string       `json:"requester_name"`
	DueDate       string       `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedCost null.Float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	IsRecurring   bool         `json:"is_recurring"`
	Frequency     string       `json:"frequency" validate:"frequency_logic,omitempty,oneof=None Daily Weekly Monthly Quarterly Yearly"`
}

// UpdateMaintenanceRequestDTO is the full-replace edit payload; like
// equipment, the form resubmits every field.
type UpdateMaintenanceRequestDTO struct {
	EquipmentID   uint64       `json:"equipment_id" validate:"required"`
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description"`
	Priority      string       `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Status        string       `json:"status" validate:"required,oneof=New 'In Progress' Completed Overdue"`
	AssignedTo    string       `json:"assigned_to"`
	RequesterName string       `json:"requester_name"`
	DueDate       string       `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedCost null.Float64 `json:"estimated_cost" validate:"omitempty,gte=0"`
	ActualCost    null.Float64 `json:"actual_cost" validate:"omitempty,gte=0"`
	IsRecurring   bool         `json:"is_recurring"`
	Frequency     string       `json:"frequency" validate:"frequency_logic,omitempty,oneof=None Daily Weekly Monthly Quarterly Yearly"`
}

type UpdateMaintenanceStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=New 'In Progress' Completed Overdue"`
}

type MaintenanceRequestDTO struct {
	ID                uint64   `json:"id"`
	EquipmentID       uint64   `json:"equipment_id"`
	EquipmentName     string   `json:"equipment_name,omitempty"`
	EquipmentCategory string   `json:"equipment_category,omitempty"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Priority          string   `json:"priority"`
	Status            string   `json:"status"`
	ComputedOverdue   bool     `json:"computed_overdue"`
	AssignedTo        string   `json:"assigned_to,omitempty"`
	RequesterName     string   `json:"requester_name,omitempty"`
	DueDate           string   `json:"due_date,omitempty"`
	EstimatedCost     *float64 `json:"estimated_cost,omitempty"`
	ActualCost        *float64 `json:"actual_cost,omitempty"`
	IsRecurring       bool     `json:"is_recurring"`
	Frequency         string   `json:"frequency"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type KanbanColumnDTO struct {
	Status   string                  `json:"status"`
	Requests []MaintenanceRequestDTO `json:"requests"`
}

type KanbanBoardDTO struct {
	Columns []KanbanColumnDTO `json:"columns"`
}

type CalendarDayDTO struct {
	Date     string                  `json:"date"`
	Requests []MaintenanceRequestDTO `json:"requests"`
}

type CalendarDTO struct {
	Days     []CalendarDayDTO        `json:"days"`
	Upcoming []MaintenanceRequestDTO `json:"upcoming"`
}

// RequestFromEntity shapes a request for presentation. ComputedOverdue
// is derived here from the due date and stored status; the stored
// status field passes through untouched.
func RequestFromEntity(r entities.MaintenanceRequest, now time.Time) MaintenanceRequestDTO {
	d := MaintenanceRequestDTO{
		ID:                r.ID,
		EquipmentID:       r.EquipmentID,
		EquipmentName:     r.EquipmentName.String,
		EquipmentCategory: r.EquipmentCategory.String,
		Title:             r.Title,
		Description:       r.Description.String,
		Priority:          r.Priority,
		Status:            r.Status,
		ComputedOverdue:   entities.ComputedOverdue(r, now),
		AssignedTo:        r.AssignedTo.String,
		RequesterName:     r.RequesterName.String,
		DueDate:           utils.FormatDate(r.DueDate),
		IsRecurring:       r.IsRecurring,
		Frequency:         r.Frequency,
		CreatedAt:         r.CreatedAt.Format(timestampLayout),
		UpdatedAt:         r.UpdatedAt.Format(timestampLayout),
	}
	if r.EstimatedCost.Valid {
		d.EstimatedCost = utils.ToPtr(utils.Round2(r.EstimatedCost.Float64))
	}
	if r.ActualCost.Valid {
		d.ActualCost = utils.ToPtr(utils.Round2(r.ActualCost.Float64))
	}
	return d
}

func RequestListFromEntities(items []entities.MaintenanceRequest, now time.Time) []MaintenanceRequestDTO {
	dtos := make([]MaintenanceRequestDTO, len(items))
	for i, r := range items {
		dtos[i] = RequestFromEntity(r, now)
	}
	return dtos
}
