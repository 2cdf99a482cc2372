package model

import (
	"database/sql"
	"strconv"
)

// RegistrationColumns is the column order of Registration.Values
var RegistrationColumns = []string{
	"reg_type", "organization_name", "prefix", "first_name", "last_name",
	"address1", "address2", "city", "state", "zip", "zipext", "country",
	"principal_city", "principal_state", "principal_zip", "principal_zipext", "principal_country",
	"contact_intl_phone", "registrant_general_description", "self_select",
	"client_name", "client_address", "client_city", "client_state", "client_zip", "client_zipext", "client_country",
	"prin_client_city", "prin_client_state", "prin_client_zip", "prin_client_zipext", "prin_client_country",
	"client_general_description", "senate_id", "house_id", "specific_issues", "affiliated_url",
	"report_year", "report_type", "effective_date", "printed_name", "signed_date",
}

// Registration is a House initial registration (LD-1)
type Registration struct {
	RegType                      sql.NullString
	OrganizationName             sql.NullString
	Prefix                       sql.NullString
	FirstName                    sql.NullString
	LastName                     sql.NullString
	Address1                     sql.NullString
	Address2                     sql.NullString
	City                         sql.NullString
	State                        sql.NullString
	Zip                          sql.NullString
	ZipExt                       sql.NullString
	Country                      sql.NullString
	PrincipalCity                sql.NullString
	PrincipalState               sql.NullString
	PrincipalZip                 sql.NullString
	PrincipalZipExt              sql.NullString
	PrincipalCountry             sql.NullString
	ContactIntlPhone             sql.NullString
	RegistrantGeneralDescription sql.NullString
	SelfSelect                   sql.NullString
	ClientName                   sql.NullString
	ClientAddress                sql.NullString
	ClientCity                   sql.NullString
	ClientState                  sql.NullString
	ClientZip                    sql.NullString
	ClientZipExt                 sql.NullString
	ClientCountry                sql.NullString
	PrinClientCity               sql.NullString
	PrinClientState              sql.NullString
	PrinClientZip                sql.NullString
	PrinClientZipExt             sql.NullString
	PrinClientCountry            sql.NullString
	ClientGeneralDescription     sql.NullString
	SenateID                     sql.NullString
	HouseID                      sql.NullString
	SpecificIssues               sql.NullString
	AffiliatedURL                sql.NullString
	ReportYear                   sql.NullString
	ReportType                   sql.NullString
	EffectiveDate                sql.NullString
	PrintedName                  sql.NullString
	SignedDate                   sql.NullString
}

func (r Registration) Values() []sql.NullString {
	return []sql.NullString{
		r.RegType, r.OrganizationName, r.Prefix, r.FirstName, r.LastName,
		r.Address1, r.Address2, r.City, r.State, r.Zip, r.ZipExt, r.Country,
		r.PrincipalCity, r.PrincipalState, r.PrincipalZip, r.PrincipalZipExt, r.PrincipalCountry,
		r.ContactIntlPhone, r.RegistrantGeneralDescription, r.SelfSelect,
		r.ClientName, r.ClientAddress, r.ClientCity, r.ClientState, r.ClientZip, r.ClientZipExt, r.ClientCountry,
		r.PrinClientCity, r.PrinClientState, r.PrinClientZip, r.PrinClientZipExt, r.PrinClientCountry,
		r.ClientGeneralDescription, r.SenateID, r.HouseID, r.SpecificIssues, r.AffiliatedURL,
		r.ReportYear, r.ReportType, r.EffectiveDate, r.PrintedName, r.SignedDate,
	}
}

// ReportColumns is the column order of Report.Values, base fields first and
// the amendment update block last.
var ReportColumns = append(append([]string{}, reportBaseColumns...), ReportUpdateColumns...)

var reportBaseColumns = []string{
	"organization_name", "prefix", "first_name", "last_name", "registrant_different_address",
	"address1", "address2", "city", "state", "zip", "zipext", "country",
	"principal_city", "principal_state", "principal_zip", "principal_zipext", "principal_country",
	"contact_prefix", "contact_name", "contact_phone", "contact_intl_phone", "contact_email",
	"self_select", "client_name", "senate_id", "house_id", "report_year", "report_type",
	"termination_date", "no_lobbying", "income", "expenses", "expenses_method",
	"printed_name", "signed_date", "signer_email",
}

// ReportUpdateColumns names the replacement client fields of an amendment
var ReportUpdateColumns = []string{
	"update_client_address", "update_client_city", "update_client_state",
	"update_client_zip", "update_client_zipext", "update_client_country",
	"update_prin_client_city", "update_prin_client_state", "update_prin_client_zip",
	"update_prin_client_zipext", "update_prin_client_country", "update_client_general_description",
}

// Report is a House quarterly or year-end activity report (LD-2)
type Report struct {
	OrganizationName           sql.NullString
	Prefix                     sql.NullString
	FirstName                  sql.NullString
	LastName                   sql.NullString
	RegistrantDifferentAddress sql.NullString
	Address1                   sql.NullString
	Address2                   sql.NullString
	City                       sql.NullString
	State                      sql.NullString
	Zip                        sql.NullString
	ZipExt                     sql.NullString
	Country                    sql.NullString
	PrincipalCity              sql.NullString
	PrincipalState             sql.NullString
	PrincipalZip               sql.NullString
	PrincipalZipExt            sql.NullString
	PrincipalCountry           sql.NullString
	ContactPrefix              sql.NullString
	ContactName                sql.NullString
	ContactPhone               sql.NullString
	ContactIntlPhone           sql.NullString
	ContactEmail               sql.NullString
	SelfSelect                 sql.NullString
	ClientName                 sql.NullString
	SenateID                   sql.NullString
	HouseID                    sql.NullString
	ReportYear                 sql.NullString
	ReportType                 sql.NullString
	TerminationDate            sql.NullString
	NoLobbying                 sql.NullString
	Income                     sql.NullString
	Expenses                   sql.NullString
	ExpensesMethod             sql.NullString
	PrintedName                sql.NullString
	SignedDate                 sql.NullString
	SignerEmail                sql.NullString

	// Updates is nil unless the filing carries an <updates> block
	Updates *ReportUpdates
}

// ReportUpdates holds the client address and description an amendment replaces
type ReportUpdates struct {
	ClientAddress            sql.NullString
	ClientCity               sql.NullString
	ClientState              sql.NullString
	ClientZip                sql.NullString
	ClientZipExt             sql.NullString
	ClientCountry            sql.NullString
	PrinClientCity           sql.NullString
	PrinClientState          sql.NullString
	PrinClientZip            sql.NullString
	PrinClientZipExt         sql.NullString
	PrinClientCountry        sql.NullString
	ClientGeneralDescription sql.NullString
}

func (u *ReportUpdates) Values() []sql.NullString {
	if u == nil {
		return make([]sql.NullString, len(ReportUpdateColumns))
	}
	return []sql.NullString{
		u.ClientAddress, u.ClientCity, u.ClientState, u.ClientZip, u.ClientZipExt, u.ClientCountry,
		u.PrinClientCity, u.PrinClientState, u.PrinClientZip, u.PrinClientZipExt, u.PrinClientCountry,
		u.ClientGeneralDescription,
	}
}

func (r Report) Values() []sql.NullString {
	base := []sql.NullString{
		r.OrganizationName, r.Prefix, r.FirstName, r.LastName, r.RegistrantDifferentAddress,
		r.Address1, r.Address2, r.City, r.State, r.Zip, r.ZipExt, r.Country,
		r.PrincipalCity, r.PrincipalState, r.PrincipalZip, r.PrincipalZipExt, r.PrincipalCountry,
		r.ContactPrefix, r.ContactName, r.ContactPhone, r.ContactIntlPhone, r.ContactEmail,
		r.SelfSelect, r.ClientName, r.SenateID, r.HouseID, r.ReportYear, r.ReportType,
		r.TerminationDate, r.NoLobbying, r.Income, r.Expenses, r.ExpensesMethod,
		r.PrintedName, r.SignedDate, r.SignerEmail,
	}
	return append(base, r.Updates.Values()...)
}

// LobbyistColumns is the column order of Lobbyist.Values
var LobbyistColumns = []string{"first_name", "last_name", "suffix", "covered_position", "new"}

// Lobbyist is a named lobbyist, either on a registration or under a report issue
type Lobbyist struct {
	FirstName       sql.NullString
	LastName        sql.NullString
	Suffix          sql.NullString
	CoveredPosition sql.NullString
	New             bool
}

func (l Lobbyist) Values() []sql.NullString {
	return []sql.NullString{
		l.FirstName, l.LastName, l.Suffix, l.CoveredPosition,
		{String: strconv.FormatBool(l.New), Valid: true},
	}
}

// InactiveLobbyistColumns is the column order of InactiveLobbyist.Values
var InactiveLobbyistColumns = []string{"first_name", "last_name", "suffix"}

// InactiveLobbyist is a lobbyist an amendment removes
type InactiveLobbyist struct {
	FirstName sql.NullString
	LastName  sql.NullString
	Suffix    sql.NullString
}

func (l InactiveLobbyist) Values() []sql.NullString {
	return []sql.NullString{l.FirstName, l.LastName, l.Suffix}
}

// Issue is one lobbying issue area of a report
type Issue struct {
	Code                string
	SpecificIssues      []string
	FederalAgencies     sql.NullString
	Lobbyists           []Lobbyist
	ForeignEntityIssues sql.NullString
}

// AffiliatedOrgColumns is the column order of AffiliatedOrg.Values
var AffiliatedOrgColumns = []string{
	"name", "address", "city", "state", "zip", "country",
	"prin_org_city", "prin_org_state", "prin_org_country",
}

// AffiliatedOrg is an organization affiliated with the registrant or client
type AffiliatedOrg struct {
	Name        sql.NullString
	Address     sql.NullString
	City        sql.NullString
	State       sql.NullString
	Zip         sql.NullString
	Country     sql.NullString
	PrinCity    sql.NullString
	PrinState   sql.NullString
	PrinCountry sql.NullString
}

func (o AffiliatedOrg) Values() []sql.NullString {
	return []sql.NullString{
		o.Name, o.Address, o.City, o.State, o.Zip, o.Country,
		o.PrinCity, o.PrinState, o.PrinCountry,
	}
}

// ForeignEntityColumns is the column order of ForeignEntity.Values
var ForeignEntityColumns = []string{
	"name", "address", "city", "state", "country",
	"prin_city", "prin_state", "prin_country", "contribution", "ownership_percentage",
}

// ForeignEntity is a foreign party with an interest in a House filing
type ForeignEntity struct {
	Name                sql.NullString
	Address             sql.NullString
	City                sql.NullString
	State               sql.NullString
	Country             sql.NullString
	PrinCity            sql.NullString
	PrinState           sql.NullString
	PrinCountry         sql.NullString
	Contribution        sql.NullString
	OwnershipPercentage sql.NullString
}

func (e ForeignEntity) Values() []sql.NullString {
	return []sql.NullString{
		e.Name, e.Address, e.City, e.State, e.Country,
		e.PrinCity, e.PrinState, e.PrinCountry, e.Contribution, e.OwnershipPercentage,
	}
}
