package entity

import (
	"regexp"
	"strings"
)

// LeafSuffix marca um diretório de medição (measurement set) de um sub-band.
const LeafSuffix = "MHz.ms"

// FilenamePattern captura a data de aquisição e o sub-band do nome de um MS.
// A busca não é ancorada: conteúdo extra antes ou depois do trecho reconhecido é tolerado.
const FilenamePattern = `(?P<date>\d{8})_\d{6}_(?P<band>\d{2})MHz\.ms`

var filenameRegex = regexp.MustCompile(FilenamePattern)

var (
	dateGroup = filenameRegex.SubexpIndex("date")
	bandGroup = filenameRegex.SubexpIndex("band")
)

// FilenameMatch holds the fields extracted from a measurement set name.
// Both fields are kept as literal strings so leading zeros survive.
type FilenameMatch struct {
	Date string `json:"date"`
	Band string `json:"band"`
}

// DirEntry is one child returned by a directory listing.
type DirEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir"`
}

// IsLeafName reports whether name, trimmed of surrounding whitespace, ends with LeafSuffix.
func IsLeafName(name string) bool {
	return strings.HasSuffix(strings.TrimSpace(name), LeafSuffix)
}

// IsLeaf reports whether the entry is a leaf container: a directory with a leaf name.
// Leaf containers are never opened.
func (e DirEntry) IsLeaf() bool {
	return e.IsDir && IsLeafName(e.Name)
}

// MatchFilename aplica o padrão ao nome e retorna date e band.
// O segundo retorno é false quando o nome não corresponde; isso não é um erro.
func MatchFilename(name string) (FilenameMatch, bool) {
	groups := filenameRegex.FindStringSubmatch(name)
	if groups == nil {
		return FilenameMatch{}, false
	}
	return FilenameMatch{
		Date: groups[dateGroup],
		Band: groups[bandGroup],
	}, true
}
