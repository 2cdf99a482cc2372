package records

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjenkins/lobbying/internal/disclosure"
	"github.com/jjenkins/lobbying/internal/model"
)

const threeIssueReport = `<LOBBYINGDISCLOSURE2>
  <organizationName>Acme</organizationName>
  <alis>
    <ali_info>
      <issueAreaCode>TRD</issueAreaCode>
      <specific_issues><description>One</description><description>Two</description></specific_issues>
      <federal_agencies>SENATE</federal_agencies>
      <lobbyists><lobbyist><lobbyistFirstName>Ann</lobbyistFirstName><lobbyistNew>Y</lobbyistNew></lobbyist></lobbyists>
    </ali_info>
    <ali_info>
      <issueAreaCode>MAN</issueAreaCode>
      <lobbyists>
        <lobbyist><lobbyistFirstName>Bob</lobbyistFirstName></lobbyist>
        <lobbyist><lobbyistLastName>Cruz</lobbyistLastName></lobbyist>
      </lobbyists>
    </ali_info>
    <ali_info>
      <issueAreaCode>TAX</issueAreaCode>
    </ali_info>
  </alis>
</LOBBYINGDISCLOSURE2>`

func open(t *testing.T, kind disclosure.Kind, id, content string) *Document {
	t.Helper()
	doc, err := Open(kind, disclosure.FromBytes(id, []byte(content)))
	require.NoError(t, err)
	return doc
}

func stringsOf(rows []Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Strings()
	}
	return out
}

func TestEmit(t *testing.T) {
	rows := Emit("doc-1", []model.InactiveLobbyist{
		{FirstName: sql.NullString{String: "Ann", Valid: true}},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, Row{
		{String: "doc-1", Valid: true},
		{String: "Ann", Valid: true},
		{},
		{},
	}, rows[0])
}

func TestEmitIssueScoped(t *testing.T) {
	row := EmitIssueScoped("doc-1", 2, "TAX", []sql.NullString{{String: "x", Valid: true}})
	assert.Equal(t, []string{"doc-1", "2", "TAX", "x"}, row.Strings())
}

func TestRowArgs(t *testing.T) {
	row := Row{{String: "a", Valid: true}, {}, {String: "", Valid: true}}
	assert.Equal(t, []any{"a", nil, ""}, row.Args())
	assert.Equal(t, []string{"a", "", ""}, row.Strings())
}

func TestIssueIndexing(t *testing.T) {
	doc := open(t, disclosure.HouseReport, "r1", threeIssueReport)

	issues, err := Lookup(disclosure.HouseReport, "report_issues")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"r1", "0", "TRD", "One\nTwo", "SENATE", ""},
		{"r1", "1", "MAN", "", "", ""},
		{"r1", "2", "TAX", "", "", ""},
	}, stringsOf(issues.Rows(doc)))

	lobbyists, err := Lookup(disclosure.HouseReport, "report_lobbyists")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"r1", "0", "TRD", "Ann", "", "", "", "true"},
		{"r1", "1", "MAN", "Bob", "", "", "", "false"},
		{"r1", "1", "MAN", "", "Cruz", "", "", "false"},
	}, stringsOf(lobbyists.Rows(doc)))
}

func TestReportStreamNullUpdates(t *testing.T) {
	doc := open(t, disclosure.HouseReport, "r1", threeIssueReport)

	s, err := Lookup(disclosure.HouseReport, "reports")
	require.NoError(t, err)
	rows := s.Rows(doc)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(s.Header))
	for _, v := range rows[0][len(rows[0])-len(model.ReportUpdateColumns):] {
		assert.False(t, v.Valid)
	}
}

func TestHeadersMatchRows(t *testing.T) {
	fixtures := map[disclosure.Kind]string{
		disclosure.HouseRegistration: "registration",
		disclosure.HouseReport:       "report",
		disclosure.SenateFilings:     "senate",
	}

	for kind, name := range fixtures {
		path := filepath.Join("..", "disclosure", "testdata", name+".xml")
		doc, err := Open(kind, disclosure.FromPath(name, path))
		require.NoError(t, err)

		for _, s := range ForKind(kind) {
			t.Run(s.Table(), func(t *testing.T) {
				rows := s.Rows(doc)
				assert.NotEmpty(t, rows)
				for _, r := range rows {
					assert.Len(t, r, len(s.Header))
				}
			})
		}
	}
}

func TestSenateRowsKeyedByFiling(t *testing.T) {
	path := filepath.Join("..", "disclosure", "testdata", "senate.xml")
	doc, err := Open(disclosure.SenateFilings, disclosure.FromPath("container", path))
	require.NoError(t, err)

	s, err := LookupChamber("senate", "government_entities")
	require.NoError(t, err)
	assert.Equal(t, []string{"filing_id", "entity_name"}, s.Header)
	assert.Equal(t, [][]string{
		{"AAAA-1111", "SENATE"},
		{"AAAA-1111", "HOUSE OF REPRESENTATIVES"},
	}, stringsOf(s.Rows(doc)))

	filings, err := LookupChamber("senate", "filings")
	require.NoError(t, err)
	rows := filings.Rows(doc)
	require.Len(t, rows, 2)
	assert.Equal(t, "BBBB-2222", rows[1][0].String)
}

func TestDocumentKeys(t *testing.T) {
	path := filepath.Join("..", "disclosure", "testdata", "senate.xml")
	senate, err := Open(disclosure.SenateFilings, disclosure.FromPath("container", path))
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAA-1111", "BBBB-2222"}, senate.Keys())

	report := open(t, disclosure.HouseReport, "r1", threeIssueReport)
	assert.Equal(t, []string{"r1"}, report.Keys())
}

func TestRowsIgnoresOtherFamilies(t *testing.T) {
	doc := open(t, disclosure.HouseReport, "r1", threeIssueReport)
	s, err := Lookup(disclosure.HouseRegistration, "lobbyists")
	require.NoError(t, err)
	assert.Nil(t, s.Rows(doc))
}

func TestLookup(t *testing.T) {
	s, err := LookupChamber("house", "lobbyists")
	require.NoError(t, err)
	assert.Equal(t, disclosure.HouseRegistration, s.Kind)
	assert.Equal(t, "house_lobbyists", s.Table())

	s, err = LookupChamber("house", "report_inactive_orgs")
	require.NoError(t, err)
	assert.Equal(t, disclosure.HouseReport, s.Kind)
	assert.Equal(t, []string{"report_id", "organization_name"}, s.Header)

	_, err = LookupChamber("senate", "reports")
	assert.Error(t, err)

	_, err = Lookup(disclosure.SenateFilings, "nope")
	assert.Error(t, err)
}

func TestTablesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range All() {
		assert.False(t, seen[s.Table()], "duplicate table %s", s.Table())
		seen[s.Table()] = true
	}
	assert.Len(t, Names("house"), 14)
	assert.Len(t, Names("senate"), 6)
}
