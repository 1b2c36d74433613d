package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

var reportHeaders = []string{
	"ID", "Equipment", "Category", "Title", "Priority", "Status", "Overdue",
	"Assigned To", "Requester", "Due Date", "Estimated Cost", "Actual Cost",
	"Recurring", "Frequency", "Created At",
}

// GetMaintenanceReport streams the filtered request list as an XLSX
// attachment.
func (c *ReportController) GetMaintenanceReport(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	data, err := c.reportService.GetMaintenanceReport(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, data)
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.MaintenanceRequestDTO) error {
	f := excelize.NewFile()
	sheet := "Maintenance Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := reportRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "D", 25)
	f.SetColWidth(sheet, "H", "J", 18)
	f.SetColWidth(sheet, "O", "O", 20)

	fileName := fmt.Sprintf("maintenance_%s_%s.xlsx", time.Now().Format("2006-01-02"), uuid.NewString()[:8])
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func reportRow(item dto.MaintenanceRequestDTO) []interface{} {
	return []interface{}{
		item.ID,
		item.EquipmentName,
		item.EquipmentCategory,
		item.Title,
		item.Priority,
		item.Status,
		item.ComputedOverdue,
		item.AssignedTo,
		item.RequesterName,
		item.DueDate,
		utils.SafeDeref(item.EstimatedCost),
		utils.SafeDeref(item.ActualCost),
		item.IsRecurring,
		item.Frequency,
		item.CreatedAt,
	}
}
