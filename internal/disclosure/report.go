package disclosure

import (
	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/xmltree"
)

// ReportFile is a loaded House LD-2 report, possibly an amendment.
type ReportFile struct {
	root *xmltree.Node
}

// LoadReport loads src as a House report. Reports are parsed in recovering
// mode.
func LoadReport(src Source) (*ReportFile, error) {
	doc, err := Load(src, HouseReport)
	if err != nil {
		return nil, err
	}
	return &ReportFile{root: doc.root}, nil
}

// scopes lists where amendment containers may live: inside <updates> first,
// then at the document root.
func (f *ReportFile) scopes() []*xmltree.Node {
	return []*xmltree.Node{f.root.FirstChild(updatesBlock...), f.root}
}

// container returns the first container named by names across the report's
// scopes.
func (f *ReportFile) container(names []string) *xmltree.Node {
	for _, scope := range f.scopes() {
		if c := scope.FirstChild(names...); c != nil {
			return c
		}
	}
	return nil
}

// Report returns the report row. Update columns come from the <updates>
// block only and are null when the block is absent.
func (f *ReportFile) Report() model.Report {
	n := f.root
	rf := registrantFields

	return model.Report{
		OrganizationName:           n.Get(rf.OrganizationName...),
		Prefix:                     n.Get(rf.Prefix...),
		FirstName:                  n.Get(rf.FirstName...),
		LastName:                   n.Get(rf.LastName...),
		RegistrantDifferentAddress: n.Get(rf.RegistrantDifferentAddress...),
		Address1:                   n.Get(rf.Address1...),
		Address2:                   n.Get(rf.Address2...),
		City:                       n.Get(rf.City...),
		State:                      n.Get(rf.State...),
		Zip:                        n.Get(rf.Zip...),
		ZipExt:                     n.Get(rf.ZipExt...),
		Country:                    n.Get(rf.Country...),
		PrincipalCity:              n.Get(rf.PrincipalCity...),
		PrincipalState:             n.Get(rf.PrincipalState...),
		PrincipalZip:               n.Get(rf.PrincipalZip...),
		PrincipalZipExt:            n.Get(rf.PrincipalZipExt...),
		PrincipalCountry:           n.Get(rf.PrincipalCountry...),
		ContactPrefix:              n.Get(rf.ContactPrefix...),
		ContactName:                n.Get(rf.ContactName...),
		ContactPhone:               n.Get(rf.ContactPhone...),
		ContactIntlPhone:           n.Get(rf.ContactIntlPhone...),
		ContactEmail:               n.Get(rf.ContactEmail...),
		SelfSelect:                 n.Get(rf.SelfSelect...),
		ClientName:                 n.Get(rf.ClientName...),
		SenateID:                   n.Get(rf.SenateID...),
		HouseID:                    n.Get(rf.HouseID...),
		ReportYear:                 n.Get(rf.ReportYear...),
		ReportType:                 n.Get(rf.ReportType...),
		TerminationDate:            n.Get("terminationDate"),
		NoLobbying:                 n.Get("noLobbying"),
		Income:                     n.Get("income"),
		Expenses:                   n.Get("expenses"),
		ExpensesMethod:             n.Get("expensesMethod"),
		PrintedName:                n.Get(rf.PrintedName...),
		SignedDate:                 n.Get(rf.SignedDate...),
		SignerEmail:                n.Get("signerEmail"),
		Updates:                    readUpdates(n.FirstChild(updatesBlock...)),
	}
}

func readUpdates(u *xmltree.Node) *model.ReportUpdates {
	if u == nil {
		return nil
	}
	cf := clientAddressFields
	return &model.ReportUpdates{
		ClientAddress:            u.Get(cf.Address...),
		ClientCity:               u.Get(cf.City...),
		ClientState:              u.Get(cf.State...),
		ClientZip:                u.Get(cf.Zip...),
		ClientZipExt:             u.Get(cf.ZipExt...),
		ClientCountry:            u.Get(cf.Country...),
		PrinClientCity:           u.Get(cf.PrinCity...),
		PrinClientState:          u.Get(cf.PrinState...),
		PrinClientZip:            u.Get(cf.PrinZip...),
		PrinClientZipExt:         u.Get(cf.PrinZipExt...),
		PrinClientCountry:        u.Get(cf.PrinCountry...),
		ClientGeneralDescription: u.Get(cf.Summary...),
	}
}

// Issues returns the report's issue areas in document order, skipping those
// without a code. Each issue carries its own lobbyist list.
func (f *ReportFile) Issues() []model.Issue {
	infos := f.root.FirstChild(aliList...).Elements(aliInfoItem...)
	return lo.FilterMap(infos, func(n *xmltree.Node, _ int) (model.Issue, bool) {
		code := n.Text(issueFields.Code...)
		if code == "" {
			return model.Issue{}, false
		}
		descriptions := n.FirstChild(issueFields.SpecificIssues...).Elements(issueFields.Description...)
		return model.Issue{
			Code:                code,
			SpecificIssues:      readCodes(descriptions),
			FederalAgencies:     n.Get(issueFields.FederalAgencies...),
			Lobbyists:           readLobbyists(n.FirstChild(lobbyistList...)),
			ForeignEntityIssues: n.Get(issueFields.ForeignEntityIssues...),
		}, true
	})
}

// AffiliatedOrgs returns the report's named affiliated organizations.
func (f *ReportFile) AffiliatedOrgs() []model.AffiliatedOrg {
	return readAffiliatedOrgs(f.container(affiliatedOrgList))
}

// ForeignEntities returns the report's named foreign entities.
func (f *ReportFile) ForeignEntities() []model.ForeignEntity {
	return readForeignEntities(f.container(foreignEntityList))
}

// InactiveLobbyists returns the lobbyists an amendment removes.
func (f *ReportFile) InactiveLobbyists() []model.InactiveLobbyist {
	items := f.container(inactiveLobbyistList).Elements(inactiveLobbyistItem...)
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.InactiveLobbyist, bool) {
		l := model.InactiveLobbyist{
			FirstName: n.Get(lobbyistFields.FirstName...),
			LastName:  n.Get(lobbyistFields.LastName...),
			Suffix:    n.Get(lobbyistFields.Suffix...),
		}
		return l, xmltree.IsNonEmpty(l.FirstName) || xmltree.IsNonEmpty(l.LastName)
	})
}

// InactiveIssues returns the issue codes an amendment removes.
func (f *ReportFile) InactiveIssues() []string {
	return readCodes(f.container(inactiveIssueList).Elements(inactiveIssueItem...))
}

// InactiveOrgs returns the affiliated organization names an amendment removes.
func (f *ReportFile) InactiveOrgs() []string {
	return readCodes(f.container(inactiveOrgList).Elements(inactiveOrgItem...))
}

// InactiveForeignEntities returns the foreign entity names an amendment
// removes. Items may hold the name as text or in a <name> child.
func (f *ReportFile) InactiveForeignEntities() []string {
	items := f.container(inactiveForeignList).Elements(inactiveForeignItem...)
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (string, bool) {
		name := inactiveName(n)
		return name, name != ""
	})
}

func inactiveName(n *xmltree.Node) string {
	if named := n.Get(foreignEntityFields.Name...); named.Valid {
		return named.String
	}
	return n.Value()
}
