package dto

import (
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

type EquipmentStatsDTO struct {
	Total         uint64 `json:"total"`
	Active        uint64 `json:"active"`
	InMaintenance uint64 `json:"in_maintenance"`
	Retired       uint64 `json:"retired"`
}

type RequestStatsDTO struct {
	Total      uint64 `json:"total"`
	New        uint64 `json:"new"`
	InProgress uint64 `json:"in_progress"`
	Completed  uint64 `json:"completed"`
	Overdue    uint64 `json:"overdue"`
}

type CostStatsDTO struct {
	TotalEstimated float64 `json:"total_estimated"`
	TotalActual    float64 `json:"total_actual"`
}

type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    uint64 `json:"count"`
}

type PriorityCountDTO struct {
	Priority string `json:"priority"`
	Count    uint64 `json:"count"`
}

type CategoryCostDTO struct {
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

type DashboardSnapshotDTO struct {
	Equipment         EquipmentStatsDTO       `json:"equipment_stats"`
	Requests          RequestStatsDTO         `json:"request_stats"`
	Costs             CostStatsDTO            `json:"cost_stats"`
	CategoryBreakdown []CategoryCountDTO      `json:"category_breakdown"`
	PriorityBreakdown []PriorityCountDTO      `json:"priority_breakdown"`
	CostByCategory    []CategoryCostDTO       `json:"cost_by_category"`
	RecentRequests    []MaintenanceRequestDTO `json:"recent_requests"`
}

func DashboardFromSnapshot(snap entities.DashboardSnapshot, now time.Time) DashboardSnapshotDTO {
	d := DashboardSnapshotDTO{
		Equipment: EquipmentStatsDTO{
			Total:         snap.Equipment.Total,
			Active:        snap.Equipment.Active,
			InMaintenance: snap.Equipment.InMaintenance,
			Retired:       snap.Equipment.Retired,
		},
		Requests: RequestStatsDTO{
			Total:      snap.Requests.Total,
			New:        snap.Requests.New,
			InProgress: snap.Requests.InProgress,
			Completed:  snap.Requests.Completed,
			Overdue:    snap.Requests.Overdue,
		},
		Costs: CostStatsDTO{
			TotalEstimated: utils.Round2(snap.Costs.TotalEstimated),
			TotalActual:    utils.Round2(snap.Costs.TotalActual),
		},
		CategoryBreakdown: make([]CategoryCountDTO, 0, len(snap.Categories)),
		PriorityBreakdown: make([]PriorityCountDTO, 0, len(snap.Priorities)),
		CostByCategory:    make([]CategoryCostDTO, 0, len(snap.CategoryCosts)),
		RecentRequests:    RequestListFromEntities(snap.Recent, now),
	}

	for _, c := range snap.Categories {
		d.CategoryBreakdown = append(d.CategoryBreakdown, CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	for _, p := range snap.Priorities {
		d.PriorityBreakdown = append(d.PriorityBreakdown, PriorityCountDTO{Priority: p.Priority, Count: p.Count})
	}
	for _, c := range snap.CategoryCosts {
		d.CostByCategory = append(d.CostByCategory, CategoryCostDTO{
			Category:  c.Category,
			Estimated: utils.Round2(c.Estimated),
			Actual:    utils.Round2(c.Actual),
		})
	}
	return d
}
