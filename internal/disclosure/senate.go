package disclosure

import (
	"github.com/samber/lo"

	"github.com/jjenkins/lobbying/internal/model"
	"github.com/jjenkins/lobbying/internal/xmltree"
)

// SenateFile is a loaded Senate PublicFilings container.
type SenateFile struct {
	root *xmltree.Node
}

// LoadSenate loads src as a Senate filings container.
func LoadSenate(src Source) (*SenateFile, error) {
	doc, err := Load(src, SenateFilings)
	if err != nil {
		return nil, err
	}
	return &SenateFile{root: doc.root}, nil
}

// Filings returns one handle per <Filing> element, in document order.
func (f *SenateFile) Filings() []Filing {
	return lo.Map(f.root.Elements(senateFilingItem...), func(n *xmltree.Node, _ int) Filing {
		return Filing{ID: n.Text(filingFields.ID...), node: n}
	})
}

// Filing is a single filing inside a Senate container. ID is the filing's
// ID attribute and keys every row derived from it.
type Filing struct {
	ID   string
	node *xmltree.Node
}

// Info returns the filing, registrant and client fields. Client fields sit on
// <Client> in newer containers and on <Registrant> in older ones.
func (f Filing) Info() model.Filing {
	n := f.node
	registrant := n.FirstChild(senateRegistrant...)
	client := n.FirstChild(senateClient...)
	clientScopes := []*xmltree.Node{client, registrant}
	rf := senateRegistrantFields
	cf := senateClientFields

	return model.Filing{
		ID:                           n.Get(filingFields.ID...),
		Year:                         n.Get(filingFields.Year...),
		Received:                     n.Get(filingFields.Received...),
		Amount:                       n.Get(filingFields.Amount...),
		Type:                         n.Get(filingFields.Type...),
		Period:                       n.Get(filingFields.Period...),
		RegistrantID:                 registrant.Get(rf.ID...),
		RegistrantName:               registrant.Get(rf.Name...),
		RegistrantGeneralDescription: registrant.Get(rf.Description...),
		RegistrantAddress:            registrant.Get(rf.Address...),
		RegistrantCountry:            registrant.Get(rf.Country...),
		RegistrantPPBCountry:         registrant.Get(rf.PPBCountry...),
		ClientID:                     xmltree.Resolve(clientScopes, cf.ID...),
		ClientName:                   xmltree.Resolve(clientScopes, cf.Name...),
		ClientGeneralDescription:     client.Get(cf.Description...),
		ClientSelfFiler:              xmltree.Resolve(clientScopes, cf.SelfFiler...),
		ClientContactFullname:        xmltree.Resolve(clientScopes, cf.ContactFullname...),
		ClientIsStateOrLocalGov:      xmltree.Resolve(clientScopes, cf.IsStateOrLocalGov...),
		ClientCountry:                xmltree.Resolve(clientScopes, cf.Country...),
		ClientPPBCountry:             xmltree.Resolve(clientScopes, cf.PPBCountry...),
		ClientState:                  xmltree.Resolve(clientScopes, cf.State...),
		ClientPPBState:               xmltree.Resolve(clientScopes, cf.PPBState...),
	}
}

// Lobbyists returns the filing's named lobbyists.
func (f Filing) Lobbyists() []model.SenateLobbyist {
	items := f.node.FirstChild(senateLobbyistList...).Elements(senateLobbyistItem...)
	lf := senateLobbyistFields
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.SenateLobbyist, bool) {
		l := model.SenateLobbyist{
			Name:                        n.Get(lf.Name...),
			CoveredGovPositionIndicator: n.Get(lf.CoveredGovPositionIndicator...),
			OfficialPosition:            n.Get(lf.OfficialPosition...),
			ActivityInformation:         n.Get(lf.ActivityInformation...),
		}
		return l, xmltree.IsNonEmpty(l.Name)
	})
}

// GovernmentEntities returns the federal bodies the filing reports contacting.
func (f Filing) GovernmentEntities() []model.GovernmentEntity {
	items := f.node.FirstChild(senateGovEntityList...).Elements(senateGovEntityItem...)
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.GovernmentEntity, bool) {
		g := model.GovernmentEntity{Name: n.Get(senateGovEntityName...)}
		return g, xmltree.IsNonEmpty(g.Name)
	})
}

// Issues returns the filing's issue codes with their specific issue text.
func (f Filing) Issues() []model.SenateIssue {
	items := f.node.FirstChild(senateIssueList...).Elements(senateIssueItem...)
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.SenateIssue, bool) {
		i := model.SenateIssue{
			Code:          n.Get(senateIssueCode...),
			SpecificIssue: n.Get(senateSpecificIssue...),
		}
		return i, xmltree.IsNonEmpty(i.Code)
	})
}

// ForeignEntities returns the filing's named foreign entities.
func (f Filing) ForeignEntities() []model.SenateForeignEntity {
	items := f.node.FirstChild(senateForeignList...).Elements(senateForeignItem...)
	ff := senateForeignEntityFields
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.SenateForeignEntity, bool) {
		e := model.SenateForeignEntity{
			Name:                n.Get(ff.Name...),
			Country:             n.Get(ff.Country...),
			PPBCountry:          n.Get(ff.PPBCountry...),
			Contribution:        n.Get(ff.Contribution...),
			OwnershipPercentage: n.Get(ff.OwnershipPercentage...),
			Status:              n.Get(ff.Status...),
		}
		return e, xmltree.IsNonEmpty(e.Name)
	})
}

// AffiliatedOrgs returns the filing's named affiliated organizations.
func (f Filing) AffiliatedOrgs() []model.SenateAffiliatedOrg {
	items := f.node.FirstChild(senateAffiliatedList...).Elements(senateAffiliatedItem...)
	af := senateAffiliatedOrgFields
	return lo.FilterMap(items, func(n *xmltree.Node, _ int) (model.SenateAffiliatedOrg, bool) {
		o := model.SenateAffiliatedOrg{
			Name:       n.Get(af.Name...),
			Country:    n.Get(af.Country...),
			PPBCountry: n.Get(af.PPBCountry...),
		}
		return o, xmltree.IsNonEmpty(o.Name)
	})
}
