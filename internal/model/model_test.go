package model

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValuesMatchColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		values  []sql.NullString
	}{
		{"Registration", RegistrationColumns, Registration{}.Values()},
		{"Report", ReportColumns, Report{}.Values()},
		{"Report with updates", ReportColumns, Report{Updates: &ReportUpdates{}}.Values()},
		{"Lobbyist", LobbyistColumns, Lobbyist{}.Values()},
		{"InactiveLobbyist", InactiveLobbyistColumns, InactiveLobbyist{}.Values()},
		{"AffiliatedOrg", AffiliatedOrgColumns, AffiliatedOrg{}.Values()},
		{"ForeignEntity", ForeignEntityColumns, ForeignEntity{}.Values()},
		{"Filing", FilingColumns, Filing{}.Values()},
		{"SenateLobbyist", SenateLobbyistColumns, SenateLobbyist{}.Values()},
		{"GovernmentEntity", GovernmentEntityColumns, GovernmentEntity{}.Values()},
		{"SenateIssue", SenateIssueColumns, SenateIssue{}.Values()},
		{"SenateForeignEntity", SenateForeignEntityColumns, SenateForeignEntity{}.Values()},
		{"SenateAffiliatedOrg", SenateAffiliatedOrgColumns, SenateAffiliatedOrg{}.Values()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.values, len(tt.columns))
		})
	}
}

func TestColumnCounts(t *testing.T) {
	assert.Len(t, RegistrationColumns, 42)
	assert.Len(t, ReportColumns, 48)
	assert.Len(t, ReportUpdateColumns, 12)
	assert.Len(t, FilingColumns, 22)
}

func TestReportWithoutUpdatesHasNullUpdateColumns(t *testing.T) {
	r := Report{ClientName: sql.NullString{String: "Client", Valid: true}}
	values := r.Values()
	for i, v := range values[len(values)-len(ReportUpdateColumns):] {
		assert.False(t, v.Valid, "update column %d should be null", i)
	}
}

func TestLobbyistNewFlag(t *testing.T) {
	v := Lobbyist{New: true}.Values()
	assert.Equal(t, sql.NullString{String: "true", Valid: true}, v[4])

	v = Lobbyist{}.Values()
	assert.Equal(t, sql.NullString{String: "false", Valid: true}, v[4])
}
