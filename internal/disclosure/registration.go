package disclosure

import (
	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/xmltree"
)

// RegistrationFile is a loaded House LD-1 registration.
type RegistrationFile struct {
	root *xmltree.Node
}

// LoadRegistration loads src as a House registration.
func LoadRegistration(src Source) (*RegistrationFile, error) {
	doc, err := Load(src, HouseRegistration)
	if err != nil {
		return nil, err
	}
	return &RegistrationFile{root: doc.root}, nil
}

// Registration returns the registrant, client and signature fields.
func (f *RegistrationFile) Registration() model.Registration {
	n := f.root
	rf := registrantFields
	cf := clientAddressFields

	return model.Registration{
		RegType:                      n.Get("regType"),
		OrganizationName:             n.Get(rf.OrganizationName...),
		Prefix:                       n.Get(rf.Prefix...),
		FirstName:                    n.Get(rf.FirstName...),
		LastName:                     n.Get(rf.LastName...),
		Address1:                     n.Get(rf.Address1...),
		Address2:                     n.Get(rf.Address2...),
		City:                         n.Get(rf.City...),
		State:                        n.Get(rf.State...),
		Zip:                          n.Get(rf.Zip...),
		ZipExt:                       n.Get(rf.ZipExt...),
		Country:                      n.Get(rf.Country...),
		PrincipalCity:                n.Get(rf.PrincipalCity...),
		PrincipalState:               n.Get(rf.PrincipalState...),
		PrincipalZip:                 n.Get(rf.PrincipalZip...),
		PrincipalZipExt:              n.Get(rf.PrincipalZipExt...),
		PrincipalCountry:             n.Get(rf.PrincipalCountry...),
		ContactIntlPhone:             n.Get(rf.ContactIntlPhone...),
		RegistrantGeneralDescription: n.Get("registrantGeneralDescription"),
		SelfSelect:                   n.Get(rf.SelfSelect...),
		ClientName:                   n.Get(rf.ClientName...),
		ClientAddress:                n.Get(cf.Address...),
		ClientCity:                   n.Get(cf.City...),
		ClientState:                  n.Get(cf.State...),
		ClientZip:                    n.Get(cf.Zip...),
		ClientZipExt:                 n.Get(cf.ZipExt...),
		ClientCountry:                n.Get(cf.Country...),
		PrinClientCity:               n.Get(cf.PrinCity...),
		PrinClientState:              n.Get(cf.PrinState...),
		PrinClientZip:                n.Get(cf.PrinZip...),
		PrinClientZipExt:             n.Get(cf.PrinZipExt...),
		PrinClientCountry:            n.Get(cf.PrinCountry...),
		ClientGeneralDescription:     n.Get(cf.Summary...),
		SenateID:                     n.Get(rf.SenateID...),
		HouseID:                      n.Get(rf.HouseID...),
		SpecificIssues:               n.Get(issueFields.SpecificIssues...),
		AffiliatedURL:                n.Get("affiliatedUrl"),
		ReportYear:                   n.Get(rf.ReportYear...),
		ReportType:                   n.Get(rf.ReportType...),
		EffectiveDate:                n.Get("effectiveDate"),
		PrintedName:                  n.Get(rf.PrintedName...),
		SignedDate:                   n.Get(rf.SignedDate...),
	}
}

// Lobbyists returns the registration's lobbyists that carry a name.
func (f *RegistrationFile) Lobbyists() []model.Lobbyist {
	return readLobbyists(f.root.FirstChild(lobbyistList...))
}

// Issues returns the non-empty issue area codes.
func (f *RegistrationFile) Issues() []string {
	return readCodes(f.root.FirstChild(aliList...).Elements(aliCodeItem...))
}

// AffiliatedOrgs returns the named affiliated organizations.
func (f *RegistrationFile) AffiliatedOrgs() []model.AffiliatedOrg {
	return readAffiliatedOrgs(f.root.FirstChild(affiliatedOrgList...))
}

// ForeignEntities returns the named foreign entities.
func (f *RegistrationFile) ForeignEntities() []model.ForeignEntity {
	return readForeignEntities(f.root.FirstChild(foreignEntityList...))
}

func readLobbyist(n *xmltree.Node) model.Lobbyist {
	return model.Lobbyist{
		FirstName:       n.Get(lobbyistFields.FirstName...),
		LastName:        n.Get(lobbyistFields.LastName...),
		Suffix:          n.Get(lobbyistFields.Suffix...),
		CoveredPosition: n.Get(lobbyistFields.CoveredPosition...),
		New:             n.Flag(lobbyistFields.New...),
	}
}

func readLobbyists(list *xmltree.Node) []model.Lobbyist {
	return lo.FilterMap(list.Elements(lobbyistItem...), func(n *xmltree.Node, _ int) (model.Lobbyist, bool) {
		l := readLobbyist(n)
		return l, xmltree.IsNonEmpty(l.FirstName) || xmltree.IsNonEmpty(l.LastName)
	})
}

// readCodes returns the cleaned, non-empty text of each node.
func readCodes(nodes []*xmltree.Node) []string {
	return lo.FilterMap(nodes, func(n *xmltree.Node, _ int) (string, bool) {
		code := n.Value()
		return code, code != ""
	})
}

func readAffiliatedOrgs(list *xmltree.Node) []model.AffiliatedOrg {
	af := affiliatedOrgFields
	return lo.FilterMap(list.Elements(affiliatedOrgItem...), func(n *xmltree.Node, _ int) (model.AffiliatedOrg, bool) {
		org := model.AffiliatedOrg{
			Name:        n.Get(af.Name...),
			Address:     n.Get(af.Address...),
			City:        n.Get(af.City...),
			State:       n.Get(af.State...),
			Zip:         n.Get(af.Zip...),
			Country:     n.Get(af.Country...),
			PrinCity:    n.Get(af.PrinCity...),
			PrinState:   n.Get(af.PrinState...),
			PrinCountry: n.Get(af.PrinCountry...),
		}
		return org, xmltree.IsNonEmpty(org.Name)
	})
}

func readForeignEntities(list *xmltree.Node) []model.ForeignEntity {
	ff := foreignEntityFields
	return lo.FilterMap(list.Elements(foreignEntityItem...), func(n *xmltree.Node, _ int) (model.ForeignEntity, bool) {
		entity := model.ForeignEntity{
			Name:                n.Get(ff.Name...),
			Address:             n.Get(ff.Address...),
			City:                n.Get(ff.City...),
			State:               n.Get(ff.State...),
			Country:             n.Get(ff.Country...),
			PrinCity:            n.Get(ff.PrinCity...),
			PrinState:           n.Get(ff.PrinState...),
			PrinCountry:         n.Get(ff.PrinCountry...),
			Contribution:        n.Get(ff.Contribution...),
			OwnershipPercentage: n.Get(ff.OwnershipPercentage...),
		}
		return entity, xmltree.IsNonEmpty(entity.Name)
	})
}
