package entities

import "sort"

// DashboardSnapshot is derived, never persisted. It is recomputed from
// the full record set on every read; dataset sizes are small and
// correctness wins over incremental bookkeeping.
type DashboardSnapshot struct {
	Equipment     EquipmentTotals
	Requests      RequestTotals
	Costs         CostTotals
	Categories    []CategoryCount
	Priorities    []PriorityCount
	CategoryCosts []CategoryCost
	Recent        []MaintenanceRequest
}

type EquipmentTotals struct {
	Total         uint64
	Active        uint64
	InMaintenance uint64
	Retired       uint64
}

type RequestTotals struct {
	Total      uint64
	New        uint64
	InProgress uint64
	Completed  uint64
	Overdue    uint64
}

type CostTotals struct {
	TotalEstimated float64
	TotalActual    float64
}

type CategoryCount struct {
	Category string
	Count    uint64
}

type PriorityCount struct {
	Priority string
	Count    uint64
}

type CategoryCost struct {
	Category  string
	Estimated float64
	Actual    float64
}

const recentRequestLimit = 5

// BuildDashboardSnapshot aggregates the current collections. Request
// totals go by the stored status field; the computed overdue flag never
// feeds aggregation. Category breakdowns use outer-join semantics: a
// category present among equipment appears even with zero requests,
// while requests whose equipment reference dangles are not attributed
// to any category.
func BuildDashboardSnapshot(equipment []Equipment, requests []MaintenanceRequest) DashboardSnapshot {
	snap := DashboardSnapshot{}

	categoryByEquipment := make(map[uint64]string, len(equipment))
	categorySeen := make(map[string]bool)
	var categoryOrder []string

	snap.Equipment.Total = uint64(len(equipment))
	for _, e := range equipment {
		switch e.Status {
		case EquipmentActive:
			snap.Equipment.Active++
		case EquipmentMaintenance:
			snap.Equipment.InMaintenance++
		case EquipmentRetired:
			snap.Equipment.Retired++
		}
		categoryByEquipment[e.ID] = e.Category
		if !categorySeen[e.Category] {
			categorySeen[e.Category] = true
			categoryOrder = append(categoryOrder, e.Category)
		}
	}

	categoryCounts := make(map[string]uint64)
	categoryEstimated := make(map[string]float64)
	categoryActual := make(map[string]float64)
	priorityCounts := make(map[string]uint64)
	var priorityOrder []string

	snap.Requests.Total = uint64(len(requests))
	for _, r := range requests {
		switch r.Status {
		case StatusNew:
			snap.Requests.New++
		case StatusInProgress:
			snap.Requests.InProgress++
		case StatusCompleted:
			snap.Requests.Completed++
		case StatusOverdue:
			snap.Requests.Overdue++
		}

		snap.Costs.TotalEstimated += r.EstimatedCost.Float64
		snap.Costs.TotalActual += r.ActualCost.Float64

		if category, ok := categoryByEquipment[r.EquipmentID]; ok {
			categoryCounts[category]++
			categoryEstimated[category] += r.EstimatedCost.Float64
			categoryActual[category] += r.ActualCost.Float64
		}

		if r.Status != StatusCompleted {
			if _, seen := priorityCounts[r.Priority]; !seen {
				priorityOrder = append(priorityOrder, r.Priority)
			}
			priorityCounts[r.Priority]++
		}
	}

	for _, category := range categoryOrder {
		snap.Categories = append(snap.Categories, CategoryCount{Category: category, Count: categoryCounts[category]})
		snap.CategoryCosts = append(snap.CategoryCosts, CategoryCost{
			Category:  category,
			Estimated: categoryEstimated[category],
			Actual:    categoryActual[category],
		})
	}
	sort.SliceStable(snap.Categories, func(i, j int) bool {
		return snap.Categories[i].Count > snap.Categories[j].Count
	})

	for _, priority := range priorityOrder {
		snap.Priorities = append(snap.Priorities, PriorityCount{Priority: priority, Count: priorityCounts[priority]})
	}
	sort.SliceStable(snap.Priorities, func(i, j int) bool {
		return PriorityRank(snap.Priorities[i].Priority) < PriorityRank(snap.Priorities[j].Priority)
	})

	recent := make([]MaintenanceRequest, len(requests))
	copy(recent, requests)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentRequestLimit {
		recent = recent[:recentRequestLimit]
	}
	snap.Recent = recent

	return snap
}
