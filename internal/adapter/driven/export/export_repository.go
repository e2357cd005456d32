package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
	"github.com/diillson/count-ovro-files/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToText grava o relatório já renderizado, sem alterações.
func (r *ExportRepositoryImpl) ExportToText(report string, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "txt")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputFilename, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("error writing text report: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF desenha a tabela de contagens em páginas A4.
// The table must already be consolidated; bands gives the column order.
func (r *ExportRepositoryImpl) ExportToPDF(table *entity.CountTable, bands []string, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	orientation := "P"
	if len(bands) > 8 {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	stripeColor := [3]int{240, 240, 240}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	dateWidth := 30.0
	bandWidth := 0.0
	if len(bands) > 0 {
		bandWidth = (usable - dateWidth) / float64(len(bands))
		if bandWidth > 25 {
			bandWidth = 25
		}
	}

	generated := time.Now().Format("2006-01-02 15:04")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("MS File Count | %s", generated)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawHeader := func() {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(dateWidth, 8, "date", "1", 0, "C", true, 0, "")
		for _, band := range bands {
			pdf.CellFormat(bandWidth, 8, tr(band+"MHz"), "1", 0, "R", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 12, tr("MS files by date and sub-band"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%d dates, %d sub-bands, %d files", table.Len(), len(bands), table.Total())), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawHeader()

	_, pageHeight := pdf.GetPageSize()
	pdf.SetFont("Arial", "", 10)
	for i, date := range table.Dates() {
		if pdf.GetY()+7 > pageHeight-20 {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 10)
		}

		fill := i%2 == 1
		pdf.SetFillColor(stripeColor[0], stripeColor[1], stripeColor[2])
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(dateWidth, 7, tr(date), "1", 0, "R", fill, 0, "")
		for _, count := range table.Row(date, bands) {
			pdf.CellFormat(bandWidth, 7, strconv.Itoa(count), "1", 0, "R", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
