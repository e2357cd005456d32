package entity

import "sort"

// CountTable maps an acquisition date to the number of measurement sets seen per sub-band.
// It is not safe for concurrent use.
type CountTable struct {
	counts map[string]map[string]int
}

// NewCountTable creates an empty CountTable.
func NewCountTable() *CountTable {
	return &CountTable{counts: make(map[string]map[string]int)}
}

// Record incrementa a contagem de (date, band), criando a linha ou a coluna quando necessário.
func (t *CountTable) Record(date, band string) {
	row, ok := t.counts[date]
	if !ok {
		row = make(map[string]int)
		t.counts[date] = row
	}
	row[band]++
}

// RecordMatch records a FilenameMatch.
func (t *CountTable) RecordMatch(m FilenameMatch) {
	t.Record(m.Date, m.Band)
}

// Count returns the count at (date, band) and whether that cell exists.
func (t *CountTable) Count(date, band string) (int, bool) {
	row, ok := t.counts[date]
	if !ok {
		return 0, false
	}
	n, ok := row[band]
	return n, ok
}

// Dates returns the row keys in ascending order.
func (t *CountTable) Dates() []string {
	dates := make([]string, 0, len(t.counts))
	for date := range t.counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Bands returns the union of band keys across all rows in ascending order.
func (t *CountTable) Bands() []string {
	seen := make(map[string]struct{})
	for _, row := range t.counts {
		for band := range row {
			seen[band] = struct{}{}
		}
	}
	bands := make([]string, 0, len(seen))
	for band := range seen {
		bands = append(bands, band)
	}
	sort.Strings(bands)
	return bands
}

// Row returns the counts of one date following the order of bands.
// Missing cells are reported as zero.
func (t *CountTable) Row(date string, bands []string) []int {
	row := t.counts[date]
	values := make([]int, len(bands))
	for i, band := range bands {
		values[i] = row[band]
	}
	return values
}

// Len returns the number of dates in the table.
func (t *CountTable) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts.
func (t *CountTable) Total() int {
	total := 0
	for _, row := range t.counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Consolidate preenche com zero toda combinação (date, band) ausente, de modo que
// todas as linhas tenham o mesmo conjunto de bands. Retorna esses bands ordenados.
// Chamá-lo de novo não altera a tabela.
func (t *CountTable) Consolidate() []string {
	bands := t.Bands()
	for _, row := range t.counts {
		for _, band := range bands {
			if _, ok := row[band]; !ok {
				row[band] = 0
			}
		}
	}
	return bands
}

// Equal reports whether both tables hold exactly the same cells.
func (t *CountTable) Equal(other *CountTable) bool {
	if len(t.counts) != len(other.counts) {
		return false
	}
	for date, row := range t.counts {
		otherRow, ok := other.counts[date]
		if !ok || len(row) != len(otherRow) {
			return false
		}
		for band, n := range row {
			if m, ok := otherRow[band]; !ok || m != n {
				return false
			}
		}
	}
	return true
}
