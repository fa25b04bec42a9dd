package view

import (
	"github.com/jpalmerr/serverboard/internal/dom"
)

// Container marker classes.
const (
	ClassSingle = "single"
	ClassNoAnim = "no-anim"
	ClassEmpty  = "empty"
)

// DOMSurface renders cards into a dom container element.
type DOMSurface struct {
	container *dom.Element
	labels    Labels
}

// NewDOMSurface binds a Surface to container. Labels supplies the static
// player-list heading of each card.
func NewDOMSurface(container *dom.Element, labels Labels) *DOMSurface {
	return &DOMSurface{container: container, labels: labels}
}

// Container returns the container element.
func (s *DOMSurface) Container() *dom.Element {
	return s.container
}

// NewCard builds the element tree of one card:
//
//	article.card
//	  div.card-header > h3, span.status
//	  div.meta        > div.meta-item (address), div.meta-item (latency)
//	  div.stats       > div.stat (count), div.stat (checked)
//	  div.players-title
//	  div.players
func (s *DOMSurface) NewCard(id string) Card {
	card := dom.New("article", "card", "")
	card.SetAttr("data-id", id)

	header := dom.New("div", "card-header", "")
	title := dom.New("h3", "", "")
	badge := dom.New("span", "status", "")
	header.AppendChild(title)
	header.AppendChild(badge)

	meta := dom.New("div", "meta", "")
	address := dom.New("div", "meta-item", "")
	latency := dom.New("div", "meta-item", "")
	meta.AppendChild(address)
	meta.AppendChild(latency)

	stats := dom.New("div", "stats", "")
	count := dom.New("div", "stat", "")
	checked := dom.New("div", "stat", "")
	stats.AppendChild(count)
	stats.AppendChild(checked)

	playersTitle := dom.New("div", "players-title", s.labels.PlayersTitle)
	players := dom.New("div", "players", "")

	card.AppendChild(header)
	card.AppendChild(meta)
	card.AppendChild(stats)
	card.AppendChild(playersTitle)
	card.AppendChild(players)

	return &DOMCard{
		root:    card,
		players: players,
		text: map[Field]*dom.Element{
			FieldTitle:   title,
			FieldBadge:   badge,
			FieldAddress: address,
			FieldLatency: latency,
			FieldCount:   count,
			FieldChecked: checked,
		},
	}
}

// Mount replaces the container children with the card elements in order.
func (s *DOMSurface) Mount(cards []Card) {
	elements := make([]*dom.Element, 0, len(cards))
	for _, c := range cards {
		elements = append(elements, c.(*DOMCard).root)
	}
	s.container.ReplaceChildren(elements...)
}

// ShowEmpty replaces the container children with the empty-state message.
func (s *DOMSurface) ShowEmpty(message string) {
	s.container.ReplaceChildren(dom.New("div", ClassEmpty, message))
}

// SetSingle toggles the single-server class on the container.
func (s *DOMSurface) SetSingle(on bool) {
	s.container.ToggleClass(ClassSingle, on)
}

// SuppressAnimation adds the no-anim class to the container.
func (s *DOMSurface) SuppressAnimation() {
	s.container.AddClass(ClassNoAnim)
}

// CardFragment is the rendered markup of one mounted card.
type CardFragment struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// Fragments returns the mounted cards in container order. It is empty while
// the empty-state message is shown. A card whose record did not change
// between passes yields the same HTML, so clients can leave it alone.
func (s *DOMSurface) Fragments() []CardFragment {
	var out []CardFragment
	for _, child := range s.container.Children() {
		if !child.HasClass("card") {
			continue
		}
		out = append(out, CardFragment{ID: child.AttrValue("data-id"), HTML: child.HTML()})
	}
	return out
}

// DOMCard is a Card backed by dom elements.
type DOMCard struct {
	root    *dom.Element
	players *dom.Element
	text    map[Field]*dom.Element
}

// Element returns the card's root element.
func (c *DOMCard) Element() *dom.Element {
	return c.root
}

// Players returns the player-list element.
func (c *DOMCard) Players() *dom.Element {
	return c.players
}

// SetConnectivity sets the card and badge classes.
func (c *DOMCard) SetConnectivity(conn Connectivity) {
	c.root.SetClassName("card " + conn.Class())
	c.text[FieldBadge].SetClassName("status " + conn.Class())
}

// SetText writes the text of a field region.
func (c *DOMCard) SetText(field Field, value string) {
	if el, ok := c.text[field]; ok {
		el.SetText(value)
	}
}

// SetPlayers rebuilds the player-list chips.
func (c *DOMCard) SetPlayers(r Roster) {
	c.players.Clear()
	if r.State == RosterNames {
		for _, name := range r.Names {
			c.players.AppendChild(dom.New("span", "chip", name))
		}
		return
	}
	c.players.AppendChild(dom.New("span", "muted", r.Placeholder))
}
