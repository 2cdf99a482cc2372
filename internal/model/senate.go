package model

import "database/sql"

// FilingColumns is the column order of Filing.Values. The filing id is the
// first column, so filing rows carry no separate parent key.
var FilingColumns = []string{
	"id", "year", "received", "amount", "type", "period",
	"registrant_id", "registrant_name", "registrant_general_description", "registrant_address",
	"registrant_country", "registrant_ppb_country",
	"client_id", "client_name", "client_general_description", "client_self_filer",
	"client_contact_fullname", "client_is_state_or_local_gov",
	"client_country", "client_ppb_country", "client_state", "client_ppb_state",
}

// Filing is one Senate LDA filing from a PublicFilings container
type Filing struct {
	ID                           sql.NullString
	Year                         sql.NullString
	Received                     sql.NullString
	Amount                       sql.NullString
	Type                         sql.NullString
	Period                       sql.NullString
	RegistrantID                 sql.NullString
	RegistrantName               sql.NullString
	RegistrantGeneralDescription sql.NullString
	RegistrantAddress            sql.NullString
	RegistrantCountry            sql.NullString
	RegistrantPPBCountry         sql.NullString
	ClientID                     sql.NullString
	ClientName                   sql.NullString
	ClientGeneralDescription     sql.NullString
	ClientSelfFiler              sql.NullString
	ClientContactFullname        sql.NullString
	ClientIsStateOrLocalGov      sql.NullString
	ClientCountry                sql.NullString
	ClientPPBCountry             sql.NullString
	ClientState                  sql.NullString
	ClientPPBState               sql.NullString
}

func (f Filing) Values() []sql.NullString {
	return []sql.NullString{
		f.ID, f.Year, f.Received, f.Amount, f.Type, f.Period,
		f.RegistrantID, f.RegistrantName, f.RegistrantGeneralDescription, f.RegistrantAddress,
		f.RegistrantCountry, f.RegistrantPPBCountry,
		f.ClientID, f.ClientName, f.ClientGeneralDescription, f.ClientSelfFiler,
		f.ClientContactFullname, f.ClientIsStateOrLocalGov,
		f.ClientCountry, f.ClientPPBCountry, f.ClientState, f.ClientPPBState,
	}
}

var SenateLobbyistColumns = []string{
	"name", "covered_gov_position_indicator", "official_position", "activity_information",
}

type SenateLobbyist struct {
	Name                        sql.NullString
	CoveredGovPositionIndicator sql.NullString
	OfficialPosition            sql.NullString
	ActivityInformation         sql.NullString
}

func (l SenateLobbyist) Values() []sql.NullString {
	return []sql.NullString{l.Name, l.CoveredGovPositionIndicator, l.OfficialPosition, l.ActivityInformation}
}

var GovernmentEntityColumns = []string{"entity_name"}

// GovernmentEntity is a federal body a Senate filing reports contacting
type GovernmentEntity struct {
	Name sql.NullString
}

func (g GovernmentEntity) Values() []sql.NullString {
	return []sql.NullString{g.Name}
}

var SenateIssueColumns = []string{"code", "specific_issue"}

type SenateIssue struct {
	Code          sql.NullString
	SpecificIssue sql.NullString
}

func (i SenateIssue) Values() []sql.NullString {
	return []sql.NullString{i.Code, i.SpecificIssue}
}

var SenateForeignEntityColumns = []string{
	"name", "country", "ppb_country", "contribution", "ownership_percentage", "status",
}

type SenateForeignEntity struct {
	Name                sql.NullString
	Country             sql.NullString
	PPBCountry          sql.NullString
	Contribution        sql.NullString
	OwnershipPercentage sql.NullString
	Status              sql.NullString
}

func (e SenateForeignEntity) Values() []sql.NullString {
	return []sql.NullString{e.Name, e.Country, e.PPBCountry, e.Contribution, e.OwnershipPercentage, e.Status}
}

var SenateAffiliatedOrgColumns = []string{"name", "country", "ppb_country"}

type SenateAffiliatedOrg struct {
	Name       sql.NullString
	Country    sql.NullString
	PPBCountry sql.NullString
}

func (o SenateAffiliatedOrg) Values() []sql.NullString {
	return []sql.NullString{o.Name, o.Country, o.PPBCountry}
}
