package entities

import (
	"sort"
	"time"

	"gearguard/pkg/utils"
)

// priorityRanks orders priorities for action lists. Unrecognized values
// sort last.
var priorityRanks = map[string]int{
	PriorityCritical: 1,
	PriorityHigh:     2,
	PriorityMedium:   3,
	PriorityLow:      4,
}

const priorityRankUnknown = 5

func PriorityRank(priority string) int {
	if rank, ok := priorityRanks[priority]; ok {
		return rank
	}
	return priorityRankUnknown
}

// ComputedOverdue reports whether a request should be presented as
// overdue: due date strictly before today and not completed. It is a
// display signal only and deliberately ignores whether the stored
// status literally equals "Overdue".
func ComputedOverdue(r MaintenanceRequest, now time.Time) bool {
	if !r.DueDate.Valid || r.Status == StatusCompleted {
		return false
	}
	return utils.DateOnly(r.DueDate.Time).Before(utils.DateOnly(now))
}

// SortForBoard orders requests for action: priority rank first, then
// due date ascending with NULLs last. The sort is stable on ties.
func SortForBoard(requests []MaintenanceRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		ri, rj := PriorityRank(requests[i].Priority), PriorityRank(requests[j].Priority)
		if ri != rj {
			return ri < rj
		}
		di, dj := requests[i].DueDate, requests[j].DueDate
		switch {
		case di.Valid && dj.Valid:
			return di.Time.Before(dj.Time)
		case di.Valid:
			return true
		default:
			return false
		}
	})
}

// KanbanColumn is one status column of the maintenance board.
type KanbanColumn struct {
	Status   string
	Requests []MaintenanceRequest
}

// PartitionByStatus splits requests into the four status columns,
// keyed on the stored status. Within a column the incoming order is
// preserved; callers pass board-ordered input.
func PartitionByStatus(requests []MaintenanceRequest) []KanbanColumn {
	columns := make([]KanbanColumn, len(RequestStatuses))
	index := make(map[string]int, len(RequestStatuses))
	for i, status := range RequestStatuses {
		columns[i] = KanbanColumn{Status: status, Requests: []MaintenanceRequest{}}
		index[status] = i
	}
	for _, r := range requests {
		if i, ok := index[r.Status]; ok {
			columns[i].Requests = append(columns[i].Requests, r)
		}
	}
	return columns
}

// GroupByDueDate buckets requests by the date portion of their due
// date. Requests without a due date are excluded entirely.
func GroupByDueDate(requests []MaintenanceRequest) map[string][]MaintenanceRequest {
	grouped := make(map[string][]MaintenanceRequest)
	for _, r := range requests {
		if !r.DueDate.Valid {
			continue
		}
		key := r.DueDate.Time.Format(utils.DateLayout)
		grouped[key] = append(grouped[key], r)
	}
	return grouped
}

// UpcomingRequests returns requests due today or later, ascending by
// due date, capped at limit.
func UpcomingRequests(requests []MaintenanceRequest, now time.Time, limit int) []MaintenanceRequest {
	today := utils.DateOnly(now)
	upcoming := make([]MaintenanceRequest, 0, limit)
	for _, r := range requests {
		if !r.DueDate.Valid || utils.DateOnly(r.DueDate.Time).Before(today) {
			continue
		}
		upcoming = append(upcoming, r)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Time.Before(upcoming[j].DueDate.Time)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
