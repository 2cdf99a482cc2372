package disclosure

// Candidate element/attribute names per field. Names that changed between
// schema revisions list every known spelling; the first one present in a
// document wins.

var clientAddressFields = struct {
	Address, City, State, Zip, ZipExt, Country                     []string
	PrinCity, PrinState, PrinZip, PrinZipExt, PrinCountry, Summary []string
}{
	Address:     []string{"clientAddress"},
	City:        []string{"clientCity"},
	State:       []string{"clientState"},
	Zip:         []string{"clientZip"},
	ZipExt:      []string{"clientZipExt", "clientZipext"},
	Country:     []string{"clientCountry"},
	PrinCity:    []string{"prinClientCity"},
	PrinState:   []string{"prinClientState"},
	PrinZip:     []string{"prinClientZip"},
	PrinZipExt:  []string{"prinClientZipExt", "prinClientZipext"},
	PrinCountry: []string{"prinClientCountry"},
	Summary:     []string{"clientGeneralDescription", "generalDescription"},
}

var registrantFields = struct {
	OrganizationName, Prefix, FirstName, LastName                        []string
	Address1, Address2, City, State, Zip, ZipExt, Country                []string
	PrincipalCity, PrincipalState, PrincipalZip, PrincipalZipExt         []string
	PrincipalCountry, SelfSelect, ClientName, SenateID, HouseID          []string
	ReportYear, ReportType, PrintedName, SignedDate, ContactIntlPhone    []string
	RegistrantDifferentAddress, ContactPrefix, ContactName, ContactPhone []string
	ContactEmail                                                         []string
}{
	OrganizationName:           []string{"organizationName"},
	Prefix:                     []string{"prefix"},
	FirstName:                  []string{"firstName"},
	LastName:                   []string{"lastName"},
	Address1:                   []string{"address1"},
	Address2:                   []string{"address2"},
	City:                       []string{"city"},
	State:                      []string{"state"},
	Zip:                        []string{"zip"},
	ZipExt:                     []string{"zipext", "zipExt"},
	Country:                    []string{"country"},
	PrincipalCity:              []string{"principal_city"},
	PrincipalState:             []string{"principal_state"},
	PrincipalZip:               []string{"principal_zip"},
	PrincipalZipExt:            []string{"principal_zipext", "principal_zipExt"},
	PrincipalCountry:           []string{"principal_country"},
	SelfSelect:                 []string{"selfSelect"},
	ClientName:                 []string{"clientName"},
	SenateID:                   []string{"senateID", "senateId"},
	HouseID:                    []string{"houseID", "houseId"},
	ReportYear:                 []string{"reportYear"},
	ReportType:                 []string{"reportType"},
	PrintedName:                []string{"printedName"},
	SignedDate:                 []string{"signedDate"},
	ContactIntlPhone:           []string{"contactIntlPhone"},
	RegistrantDifferentAddress: []string{"registrantDifferentAddress"},
	ContactPrefix:              []string{"contactPrefix"},
	ContactName:                []string{"contactName"},
	ContactPhone:               []string{"contactPhone"},
	ContactEmail:               []string{"contactEmail"},
}

var lobbyistFields = struct {
	FirstName, LastName, Suffix, CoveredPosition, New []string
}{
	FirstName:       []string{"lobbyistFirstName", "firstName"},
	LastName:        []string{"lobbyistLastName", "lastName"},
	Suffix:          []string{"lobbyistSuffix", "suffix"},
	CoveredPosition: []string{"coveredPosition"},
	New:             []string{"lobbyistNew"},
}

var affiliatedOrgFields = struct {
	Name, Address, City, State, Zip, Country, PrinCity, PrinState, PrinCountry []string
}{
	Name:        []string{"affiliatedOrgName"},
	Address:     []string{"affiliatedOrgAddress"},
	City:        []string{"affiliatedOrgCity"},
	State:       []string{"affiliatedOrgState"},
	Zip:         []string{"affiliatedOrgZip"},
	Country:     []string{"affiliatedOrgCountry"},
	PrinCity:    []string{"affiliatedPrinOrgCity"},
	PrinState:   []string{"affiliatedPrinOrgState"},
	PrinCountry: []string{"affiliatedPrinOrgCountry"},
}

// Older filings spell the percentage ownership_Percentage, newer ones
// Ownership_percentage.
var foreignEntityFields = struct {
	Name, Address, City, State, Country, PrinCity, PrinState, PrinCountry []string
	Contribution, OwnershipPercentage                                     []string
}{
	Name:                []string{"name"},
	Address:             []string{"address"},
	City:                []string{"city"},
	State:               []string{"state"},
	Country:             []string{"country"},
	PrinCity:            []string{"prinCity"},
	PrinState:           []string{"prinState"},
	PrinCountry:         []string{"prinCountry"},
	Contribution:        []string{"contribution"},
	OwnershipPercentage: []string{"ownership_Percentage", "Ownership_percentage"},
}

var issueFields = struct {
	Code, SpecificIssues, Description, FederalAgencies, ForeignEntityIssues []string
}{
	Code:                []string{"issueAreaCode"},
	SpecificIssues:      []string{"specific_issues"},
	Description:         []string{"description"},
	FederalAgencies:     []string{"federal_agencies"},
	ForeignEntityIssues: []string{"foreign_entity_issues"},
}

// Containers and their repeated item elements.
var (
	lobbyistList         = []string{"lobbyists"}
	lobbyistItem         = []string{"lobbyist"}
	aliList              = []string{"alis"}
	aliCodeItem          = []string{"ali_Code", "ali_code"}
	aliInfoItem          = []string{"ali_info"}
	affiliatedOrgList    = []string{"affiliatedOrgs"}
	affiliatedOrgItem    = []string{"affiliatedOrg"}
	foreignEntityList    = []string{"foreignEntities"}
	foreignEntityItem    = []string{"foreignEntity"}
	updatesBlock         = []string{"updates"}
	inactiveLobbyistList = []string{"inactive_lobbyists"}
	inactiveLobbyistItem = []string{"inactive_lobbyist"}
	inactiveIssueList    = []string{"inactive_ALIs", "inactive_alis"}
	inactiveIssueItem    = []string{"inactive_ALI", "inactive_ali"}
	inactiveOrgList      = []string{"inactiveOrgs"}
	inactiveOrgItem      = []string{"inactiveOrgName", "inactiveOrg"}
	inactiveForeignList  = []string{"inactive_ForeignEntities", "inactive_foreignEntities"}
	inactiveForeignItem  = []string{"inactive_ForeignEntity", "inactive_foreignEntity"}
)

var filingFields = struct {
	ID, Year, Received, Amount, Type, Period []string
}{
	ID:       []string{"ID"},
	Year:     []string{"Year"},
	Received: []string{"Received"},
	Amount:   []string{"Amount"},
	Type:     []string{"Type"},
	Period:   []string{"Period"},
}

var senateRegistrantFields = struct {
	ID, Name, Description, Address, Country, PPBCountry []string
}{
	ID:          []string{"RegistrantID"},
	Name:        []string{"RegistrantName"},
	Description: []string{"GeneralDescription"},
	Address:     []string{"Address"},
	Country:     []string{"RegistrantCountry"},
	PPBCountry:  []string{"RegistrantPPBCountry"},
}

var senateClientFields = struct {
	ID, Name, Description, SelfFiler, ContactFullname, IsStateOrLocalGov []string
	Country, PPBCountry, State, PPBState                                 []string
}{
	ID:                []string{"ClientID"},
	Name:              []string{"ClientName"},
	Description:       []string{"GeneralDescription"},
	SelfFiler:         []string{"SelfFiler"},
	ContactFullname:   []string{"ContactFullname", "ContactFullName"},
	IsStateOrLocalGov: []string{"IsStateOrLocalGov"},
	Country:           []string{"ClientCountry"},
	PPBCountry:        []string{"ClientPPBCountry"},
	State:             []string{"ClientState"},
	PPBState:          []string{"ClientPPBState"},
}

var senateLobbyistFields = struct {
	Name, CoveredGovPositionIndicator, OfficialPosition, ActivityInformation []string
}{
	Name:                        []string{"LobbyistName"},
	CoveredGovPositionIndicator: []string{"LobbyistCoveredGovPositionIndicator"},
	OfficialPosition:            []string{"OfficialPosition"},
	ActivityInformation:         []string{"ActivityInformation"},
}

var senateForeignEntityFields = struct {
	Name, Country, PPBCountry, Contribution, OwnershipPercentage, Status []string
}{
	Name:                []string{"ForeignEntityName"},
	Country:             []string{"ForeignEntityCountry"},
	PPBCountry:          []string{"ForeignEntityPPBcountry", "ForeignEntityPPBCountry"},
	Contribution:        []string{"ForeignEntityContribution"},
	OwnershipPercentage: []string{"ForeignEntityOwnershipPercentage"},
	Status:              []string{"ForeignEntityStatus"},
}

var senateAffiliatedOrgFields = struct {
	Name, Country, PPBCountry []string
}{
	Name:       []string{"AffiliatedOrgName"},
	Country:    []string{"AffiliatedOrgCountry"},
	PPBCountry: []string{"AffiliatedOrgPPBCcountry", "AffiliatedOrgPPBCountry"},
}

var (
	senateFilingItem     = []string{"Filing"}
	senateRegistrant     = []string{"Registrant"}
	senateClient         = []string{"Client"}
	senateLobbyistList   = []string{"Lobbyists"}
	senateLobbyistItem   = []string{"Lobbyist"}
	senateGovEntityList  = []string{"GovernmentEntities"}
	senateGovEntityItem  = []string{"GovernmentEntity"}
	senateGovEntityName  = []string{"GovEntityName"}
	senateIssueList      = []string{"Issues"}
	senateIssueItem      = []string{"Issue"}
	senateIssueCode      = []string{"Code"}
	senateSpecificIssue  = []string{"SpecificIssue"}
	senateForeignList    = []string{"ForeignEntities"}
	senateForeignItem    = []string{"Entity"}
	senateAffiliatedList = []string{"AffiliatedOrgs"}
	senateAffiliatedItem = []string{"Org"}
)
