package records

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/model"
)

// Document is a source loaded as one family, ready for any of that family's
// streams.
type Document struct {
	Kind disclosure.Kind
	ID   string
	file any
}

// Open loads src as a document of the given kind.
func Open(kind disclosure.Kind, src disclosure.Source) (*Document, error) {
	var (
		file any
		err  error
	)
	switch kind {
	case disclosure.HouseRegistration:
		file, err = disclosure.LoadRegistration(src)
	case disclosure.HouseReport:
		file, err = disclosure.LoadReport(src)
	case disclosure.SenateFilings:
		file, err = disclosure.LoadSenate(src)
	default:
		return nil, fmt.Errorf("cannot open %s documents", kind)
	}
	if err != nil {
		return nil, err
	}
	return &Document{Kind: kind, ID: src.ID, file: file}, nil
}

// Keys are the values the document's rows are keyed by: its own id for a
// House document, the id of every filing for a Senate one.
func (d *Document) Keys() []string {
	if f, ok := d.file.(*disclosure.SenateFile); ok {
		return lo.Map(f.Filings(), func(fl disclosure.Filing, _ int) string { return fl.ID })
	}
	return []string{d.ID}
}

// Stream is one output table: its family, name, header and the function that
// turns a document into rows.
type Stream struct {
	Kind   disclosure.Kind
	Name   string
	Header []string
	emit   func(doc *Document) []Row
}

// Chamber is "house" or "senate".
func (s Stream) Chamber() string {
	return chamberOf(s.Kind)
}

// Table is the stream's name qualified by chamber, unique across the catalogue.
func (s Stream) Table() string {
	return s.Chamber() + "_" + s.Name
}

// Rows emits doc's rows for this stream. A document of another family yields
// no rows.
func (s Stream) Rows(doc *Document) []Row {
	if doc == nil || doc.Kind != s.Kind {
		return nil
	}
	return s.emit(doc)
}

func chamberOf(k disclosure.Kind) string {
	if k == disclosure.SenateFilings {
		return "senate"
	}
	return "house"
}

// stream binds an emitter over a concrete file type to the catalogue.
func stream[F any](kind disclosure.Kind, name string, header []string, fn func(id string, f F) []Row) Stream {
	return Stream{
		Kind:   kind,
		Name:   name,
		Header: header,
		emit: func(doc *Document) []Row {
			return fn(doc.ID, doc.file.(F))
		},
	}
}

func cols(prefix []string, columns []string) []string {
	return append(append([]string{}, prefix...), columns...)
}

var catalogue = []Stream{
	stream(disclosure.HouseRegistration, "registrations", cols([]string{"id"}, model.RegistrationColumns),
		func(id string, f *disclosure.RegistrationFile) []Row {
			return []Row{EmitOne(id, f.Registration())}
		}),
	stream(disclosure.HouseRegistration, "lobbyists", cols([]string{"registration_id"}, model.LobbyistColumns),
		func(id string, f *disclosure.RegistrationFile) []Row {
			return Emit(id, f.Lobbyists())
		}),
	stream(disclosure.HouseRegistration, "issues", []string{"registration_id", "ali_code"},
		func(id string, f *disclosure.RegistrationFile) []Row {
			return EmitCodes(id, f.Issues())
		}),
	stream(disclosure.HouseRegistration, "affiliated_orgs", cols([]string{"registration_id"}, model.AffiliatedOrgColumns),
		func(id string, f *disclosure.RegistrationFile) []Row {
			return Emit(id, f.AffiliatedOrgs())
		}),
	stream(disclosure.HouseRegistration, "foreign_entities", cols([]string{"registration_id"}, model.ForeignEntityColumns),
		func(id string, f *disclosure.RegistrationFile) []Row {
			return Emit(id, f.ForeignEntities())
		}),

	stream(disclosure.HouseReport, "reports", cols([]string{"id"}, model.ReportColumns),
		func(id string, f *disclosure.ReportFile) []Row {
			return []Row{EmitOne(id, f.Report())}
		}),
	stream(disclosure.HouseReport, "report_issues",
		[]string{"report_id", "issue_index", "ali_code", "specific_issues", "federal_agencies", "foreign_entity_issues"},
		func(id string, f *disclosure.ReportFile) []Row {
			var rows []Row
			for idx, issue := range f.Issues() {
				rows = append(rows, EmitIssueScoped(id, idx, issue.Code,
					Row{joinLines(issue.SpecificIssues), issue.FederalAgencies, issue.ForeignEntityIssues}))
			}
			return rows
		}),
	stream(disclosure.HouseReport, "report_lobbyists", cols([]string{"report_id", "issue_index", "ali_code"}, model.LobbyistColumns),
		func(id string, f *disclosure.ReportFile) []Row {
			var rows []Row
			for idx, issue := range f.Issues() {
				for _, l := range issue.Lobbyists {
					rows = append(rows, EmitIssueScoped(id, idx, issue.Code, l.Values()))
				}
			}
			return rows
		}),
	stream(disclosure.HouseReport, "report_inactive_lobbyists", cols([]string{"report_id"}, model.InactiveLobbyistColumns),
		func(id string, f *disclosure.ReportFile) []Row {
			return Emit(id, f.InactiveLobbyists())
		}),
	stream(disclosure.HouseReport, "report_inactive_issues", []string{"report_id", "ali_code"},
		func(id string, f *disclosure.ReportFile) []Row {
			return EmitCodes(id, f.InactiveIssues())
		}),
	stream(disclosure.HouseReport, "report_inactive_orgs", []string{"report_id", "organization_name"},
		func(id string, f *disclosure.ReportFile) []Row {
			return EmitCodes(id, f.InactiveOrgs())
		}),
	stream(disclosure.HouseReport, "report_inactive_foreign_entities", []string{"report_id", "entity_name"},
		func(id string, f *disclosure.ReportFile) []Row {
			return EmitCodes(id, f.InactiveForeignEntities())
		}),
	stream(disclosure.HouseReport, "report_affiliated_orgs", cols([]string{"report_id"}, model.AffiliatedOrgColumns),
		func(id string, f *disclosure.ReportFile) []Row {
			return Emit(id, f.AffiliatedOrgs())
		}),
	stream(disclosure.HouseReport, "report_foreign_entities", cols([]string{"report_id"}, model.ForeignEntityColumns),
		func(id string, f *disclosure.ReportFile) []Row {
			return Emit(id, f.ForeignEntities())
		}),

	// Filing rows are keyed by their own id column.
	stream(disclosure.SenateFilings, "filings", model.FilingColumns,
		func(_ string, f *disclosure.SenateFile) []Row {
			var rows []Row
			for _, filing := range f.Filings() {
				rows = append(rows, Row(filing.Info().Values()))
			}
			return rows
		}),
	senateStream("lobbyists", model.SenateLobbyistColumns, func(f disclosure.Filing) []Row {
		return Emit(f.ID, f.Lobbyists())
	}),
	senateStream("government_entities", model.GovernmentEntityColumns, func(f disclosure.Filing) []Row {
		return Emit(f.ID, f.GovernmentEntities())
	}),
	senateStream("issues", model.SenateIssueColumns, func(f disclosure.Filing) []Row {
		return Emit(f.ID, f.Issues())
	}),
	senateStream("foreign_entities", model.SenateForeignEntityColumns, func(f disclosure.Filing) []Row {
		return Emit(f.ID, f.ForeignEntities())
	}),
	senateStream("affiliated_orgs", model.SenateAffiliatedOrgColumns, func(f disclosure.Filing) []Row {
		return Emit(f.ID, f.AffiliatedOrgs())
	}),
}

// senateStream builds a per-filing stream keyed by filing_id.
func senateStream(name string, columns []string, fn func(f disclosure.Filing) []Row) Stream {
	return stream(disclosure.SenateFilings, name, cols([]string{"filing_id"}, columns),
		func(_ string, f *disclosure.SenateFile) []Row {
			var rows []Row
			for _, filing := range f.Filings() {
				rows = append(rows, fn(filing)...)
			}
			return rows
		})
}

// All returns every stream in catalogue order.
func All() []Stream {
	return append([]Stream(nil), catalogue...)
}

// ForKind returns the streams of one family in catalogue order.
func ForKind(kind disclosure.Kind) []Stream {
	var out []Stream
	for _, s := range catalogue {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Lookup finds a stream by family and name.
func Lookup(kind disclosure.Kind, name string) (Stream, error) {
	for _, s := range catalogue {
		if s.Kind == kind && s.Name == name {
			return s, nil
		}
	}
	return Stream{}, fmt.Errorf("%s has no stream %q", kind, name)
}

// LookupChamber finds a stream by chamber ("house" or "senate") and name.
// House stream names are unique across registrations and reports.
func LookupChamber(chamber, name string) (Stream, error) {
	chamber = strings.ToLower(chamber)
	for _, s := range catalogue {
		if s.Chamber() == chamber && s.Name == name {
			return s, nil
		}
	}
	return Stream{}, fmt.Errorf("%s has no stream %q", chamber, name)
}

// Names lists the stream names of a chamber in catalogue order.
func Names(chamber string) []string {
	var out []string
	for _, s := range catalogue {
		if s.Chamber() == chamber {
			out = append(out, s.Name)
		}
	}
	return out
}
