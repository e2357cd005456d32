package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
)

const (
	dateWidth  = 8
	countWidth = 6
)

// RenderReport renderiza a tabela consolidada como texto de largura fixa:
// um cabeçalho com os bands e uma linha por data, em ordem crescente.
// The table is read only; bands gives the column order.
func RenderReport(table *entity.CountTable, bands []string) string {
	var sb strings.Builder

	sb.WriteString(center("date", dateWidth))
	for _, band := range bands {
		fmt.Fprintf(&sb, " %*s", countWidth, fmt.Sprintf("%3sMHz", band))
	}
	sb.WriteString("\n")

	for _, date := range table.Dates() {
		fmt.Fprintf(&sb, "%*s", dateWidth, date)
		for _, count := range table.Row(date, bands) {
			fmt.Fprintf(&sb, " %*d", countWidth, count)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// center pads s on both sides to width; the extra space goes to the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
