package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/types"
)

// Equipment categories.
const (
	CategoryIT        = "IT Equipment"
	CategoryMachinery = "Machinery"
	CategoryVehicles  = "Vehicles"
)

// Equipment lifecycle statuses.
const (
	EquipmentActive      = "Active"
	EquipmentMaintenance = "Maintenance"
	EquipmentRetired     = "Retired"
)

var EquipmentCategories = []string{CategoryIT, CategoryMachinery, CategoryVehicles}

var EquipmentStatuses = []string{EquipmentActive, EquipmentMaintenance, EquipmentRetired}

type Equipment struct {
	ID             uint64      `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Category       string      `json:"category" db:"category"`
	Location       null.String `json:"location" db:"location"`
	Status         string      `json:"status" db:"status"`
	PurchaseDate   null.Time   `json:"purchase_date" db:"purchase_date"`
	WarrantyExpiry null.Time   `json:"warranty_expiry" db:"warranty_expiry"`
	Notes          null.String `json:"notes" db:"notes"`

	types.BaseEntity
}

func ValidEquipmentCategory(category string) bool {
	for _, c := range EquipmentCategories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidEquipmentStatus(status string) bool {
	for _, s := range EquipmentStatuses {
		if s == status {
			return true
		}
	}
	return false
}
