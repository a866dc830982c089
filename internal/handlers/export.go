// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/pantryos/pantry-be/internal/core/ports"
	"github.com/pantryos/pantry-be/internal/handlers/middleware"
)

// pantryExportRow is one (item, location) ledger row of the caller's pantry.
type pantryExportRow struct {
	Barcode     string
	Title       string
	Alias       string
	Description string
	Category    string
	Location    string
	Quantity    int
	UpdatedAt   time.Time
}

// ExportHandler handles pantry export operations
type ExportHandler struct {
	db     ports.Database
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(db ports.Database, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:     db,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/items/export/excel. One row per
// (item, location) ledger entry of the calling user.
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	rows, err := h.getPantryRows(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve pantry rows",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("pantry_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "excel export completed",
		slog.Int64("user_id", userID),
		slog.Int("total_rows", len(rows)),
		slog.String("filename", filename))
}

// getPantryRows retrieves the user's ledger joined with item and location.
func (h *ExportHandler) getPantryRows(ctx context.Context, userID int64) ([]pantryExportRow, error) {
	query := `
		SELECT i.barcode, i.title, i.alias, i.description, i.category,
			l.name AS location, q.quantity, q.updated_at
		FROM user_item_quantities q
		JOIN items i ON i.id = q.item_id
		JOIN locations l ON l.id = q.location_id
		WHERE q.user_id = $1
		ORDER BY i.title ASC, l.name ASC`

	dbRows, err := h.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry rows: %w", err)
	}
	defer dbRows.Close()

	var rows []pantryExportRow
	for dbRows.Next() {
		var row pantryExportRow
		err := dbRows.Scan(
			&row.Barcode, &row.Title, &row.Alias, &row.Description,
			&row.Category, &row.Location, &row.Quantity, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pantry row: %w", err)
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pantry rows: %w", err)
	}

	return rows, nil
}

// generateExcelFile creates an Excel workbook in memory from the rows
func (h *ExportHandler) generateExcelFile(rows []pantryExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Pantry")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Barcode", "Title", "Alias", "Description", "Category",
		"Location", "Quantity", "Updated At",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		for _, value := range []string{
			row.Barcode,
			row.Title,
			row.Alias,
			row.Description,
			row.Category,
			row.Location,
			strconv.Itoa(row.Quantity),
			row.UpdatedAt.Format("2006-01-02 15:04:05"),
		} {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	for i := 0; i < len(headers); i++ {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}
