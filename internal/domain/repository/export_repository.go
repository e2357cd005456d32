package repository

import (
	"github.com/diillson/count-ovro-files/internal/domain/entity"
)

// ExportRepository writes copies of the consolidated count report to disk.
type ExportRepository interface {
	ExportToText(report string, filename, outputDir string) (string, error)
	ExportToPDF(table *entity.CountTable, bands []string, filename, outputDir string) (string, error)
}
