package model

// HouseDocuments are the download windows the House disclosure portal offers
var HouseDocuments = []string{
	"Registrations",
	"1stQuarter",
	"2ndQuarter",
	"3rdQuarter",
	"4thQuarter",
	"MidYear",
	"YearEnd",
}

// HouseFile is one bulk XML download listed by the House disclosure portal
type HouseFile struct {
	Name     string // option value, e.g. "2019 1stQuarter (XML)"
	Year     string
	Document string
}
