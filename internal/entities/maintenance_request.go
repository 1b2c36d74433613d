package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/types"
)

// Request statuses. "Overdue" is a literal, settable status value; it
// is a separate signal from the computed overdue flag (see lifecycle.go).
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOverdue    = "Overdue"
)

// Request priorities.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Recurrence frequencies. Descriptive metadata only: nothing in the
// engine generates follow-up requests from them.
const (
	FrequencyNone      = "None"
	FrequencyDaily     = "Daily"
	FrequencyWeekly    = "Weekly"
	FrequencyMonthly   = "Monthly"
	FrequencyQuarterly = "Quarterly"
	FrequencyYearly    = "Yearly"
)

var RequestStatuses = []string{StatusNew, StatusInProgress, StatusCompleted, StatusOverdue}

var RequestPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

var RequestFrequencies = []string{
	FrequencyNone, FrequencyDaily, FrequencyWeekly,
	FrequencyMonthly, FrequencyQuarterly, FrequencyYearly,
}

type MaintenanceRequest struct {
	ID            uint64       `json:"id" db:"id"`
	EquipmentID   uint64       `json:"equipment_id" db:"equipment_id"`
	Title         string       `json:"title" db:"title"`
	Description   null.String  `json:"description" db:"description"`
	Priority      string       `json:"priority" db:"priority"`
	Status        string       `json:"status" db:"status"`
	AssignedTo    null.String  `json:"assigned_to" db:"assigned_to"`
	RequesterName null.String  `json:"requester_name" db:"requester_name"`
	DueDate       null.Time    `json:"due_date" db:"due_date"`
	EstimatedCost null.Float64 `json:"estimated_cost" db:"estimated_cost"`
	ActualCost    null.Float64 `json:"actual_cost" db:"actual_cost"`
	IsRecurring   bool         `json:"is_recurring" db:"is_recurring"`
	Frequency     string       `json:"frequency" db:"frequency"`

	types.BaseEntity

	// Joined display fields; not columns of maintenance_requests. The
	// equipment reference is weak: both stay NULL when the equipment
	// has been deleted.
	EquipmentName     null.String `json:"equipment_name" db:"-"`
	EquipmentCategory null.String `json:"equipment_category" db:"-"`
}

func ValidRequestStatus(status string) bool {
	for _, s := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ValidRequestPriority(priority string) bool {
	for _, p := range RequestPriorities {
		if p == priority {
			return true
		}
	}
	return false
}

func ValidRequestFrequency(frequency string) bool {
	for _, f := range RequestFrequencies {
		if f == frequency {
			return true
		}
	}
	return false
}
