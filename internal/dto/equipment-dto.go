package dto

import (
	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

// CreateEquipmentDTO is what the add-equipment form submits. Optional
// fields left blank are stored as NULL.
type CreateEquipmentDTO struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required,oneof='IT Equipment' Machinery Vehicles"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required,oneof=Active Maintenance Retired"`
	PurchaseDate   string `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry string `json:"warranty_expiry" validate:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes"`
}

// UpdateEquipmentDTO carries the full field set: the edit form
// resubmits every field, so updates replace all mutable fields and
// clear omitted optionals to NULL. This is not a partial patch.
type UpdateEquipmentDTO = CreateEquipmentDTO

type EquipmentDTO struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status"`
	PurchaseDate   string `json:"purchase_date,omitempty"`
	WarrantyExpiry string `json:"warranty_expiry,omitempty"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// EquipmentDetailDTO pairs one piece of equipment with its maintenance
// history, newest first. History survives equipment deletion, so rows
// may reference equipment that no longer exists.
type EquipmentDetailDTO struct {
	Equipment EquipmentDTO            `json:"equipment"`
	History   []MaintenanceRequestDTO `json:"maintenance_history"`
}

const timestampLayout = "2006-01-02 15:04:05"

func EquipmentFromEntity(e entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Location:       e.Location.String,
		Status:         e.Status,
		PurchaseDate:   utils.FormatDate(e.PurchaseDate),
		WarrantyExpiry: utils.FormatDate(e.WarrantyExpiry),
		Notes:          e.Notes.String,
		CreatedAt:      e.CreatedAt.Format(timestampLayout),
		UpdatedAt:      e.UpdatedAt.Format(timestampLayout),
	}
}

func EquipmentListFromEntities(items []entities.Equipment) []EquipmentDTO {
	dtos := make([]EquipmentDTO, len(items))
	for i, e := range items {
		dtos[i] = EquipmentFromEntity(e)
	}
	return dtos
}
