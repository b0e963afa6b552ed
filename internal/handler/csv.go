package handler

import (
	"bytes"
	"encoding/csv"

	"go-sari-pos/internal/export"

	"github.com/gofiber/fiber/v2"
)

// writeCSV streams a flat table projection as a CSV download.
func writeCSV(c *fiber.Ctx, filename string, table export.Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(table.Headers); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
