package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	el := New("span", "chip", "alice")

	assert.Equal(t, "span", el.Tag())
	assert.Equal(t, "chip", el.ClassName())
	assert.Equal(t, "alice", el.Text())
	assert.Nil(t, el.ParentElement())
}

func TestNew_EmptyClassAndText(t *testing.T) {
	el := New("div", "", "")

	assert.Equal(t, "", el.ClassName())
	assert.Equal(t, "<div></div>", el.HTML())
}

func TestClassList(t *testing.T) {
	el := New("div", "card", "")

	el.AddClass("online")
	el.AddClass("online")
	assert.Equal(t, []string{"card", "online"}, el.Classes())
	assert.True(t, el.HasClass("online"))

	el.RemoveClass("online")
	assert.Equal(t, "card", el.ClassName())
	assert.False(t, el.HasClass("online"))

	el.ToggleClass("single", true)
	assert.True(t, el.HasClass("single"))
	el.ToggleClass("single", false)
	assert.False(t, el.HasClass("single"))

	el.SetClassName("")
	assert.Equal(t, "<div></div>", el.HTML())
}

func TestSetText_ReplacesChildren(t *testing.T) {
	el := New("div", "", "")
	el.AppendChild(New("span", "", "a"))
	el.AppendChild(New("span", "", "b"))

	el.SetText("plain")

	assert.Empty(t, el.Children())
	assert.Equal(t, "plain", el.Text())

	el.SetText("")
	assert.Equal(t, "", el.Text())
}

func TestAppendChild_MovesAttachedChild(t *testing.T) {
	a := New("div", "a", "")
	b := New("div", "b", "")
	child := New("span", "", "x")

	a.AppendChild(child)
	b.AppendChild(child)

	assert.Empty(t, a.Children())
	require.Len(t, b.Children(), 1)
	assert.Same(t, child, b.Children()[0])
	assert.Same(t, b, child.ParentElement())
}

func TestReplaceChildren_ReparentsInOrder(t *testing.T) {
	container := New("section", "", "")
	first := New("article", "card", "1")
	second := New("article", "card", "2")
	container.ReplaceChildren(first, second)

	container.ReplaceChildren(second, first)

	children := container.Children()
	require.Len(t, children, 2)
	assert.Same(t, second, children[0])
	assert.Same(t, first, children[1])
}

func TestReplaceChildren_DropsMissing(t *testing.T) {
	container := New("section", "", "")
	keep := New("article", "", "keep")
	drop := New("article", "", "drop")
	container.ReplaceChildren(keep, drop)

	container.ReplaceChildren(keep)

	assert.Equal(t, []*Element{keep}, container.Children())
	assert.Nil(t, drop.ParentElement())
}

func TestReplaceChildren_DuplicateEndsAtLastPosition(t *testing.T) {
	container := New("section", "", "")
	a := New("article", "", "a")
	b := New("article", "", "b")

	container.ReplaceChildren(a, b, a)

	assert.Equal(t, []*Element{b, a}, container.Children())
}

func TestFind(t *testing.T) {
	card := New("article", "card", "")
	header := New("div", "card-header", "")
	title := New("h3", "", "Lobby")
	badge := New("span", "status online", "online")
	header.AppendChild(title)
	header.AppendChild(badge)
	card.AppendChild(header)
	card.AppendChild(New("span", "chip", "a"))
	card.AppendChild(New("span", "chip", "b"))

	assert.Same(t, badge, card.Find("status"))
	assert.Same(t, title, card.FindTag("h3"))
	assert.Nil(t, card.Find("missing"))
	assert.Len(t, card.FindAll("chip"), 2)
}

func TestHTML_EscapesText(t *testing.T) {
	el := New("span", "chip", "<b>&bob")

	assert.Equal(t, `<span class="chip">&lt;b&gt;&amp;bob</span>`, el.HTML())
}

func TestInnerHTML(t *testing.T) {
	el := New("div", "players", "")
	el.AppendChild(New("span", "chip", "a"))
	el.AppendChild(New("span", "chip", "b"))

	assert.Equal(t, `<span class="chip">a</span><span class="chip">b</span>`, el.InnerHTML())
}

func TestRemove(t *testing.T) {
	parent := New("div", "", "")
	child := New("span", "", "")
	parent.AppendChild(child)

	child.Remove()
	child.Remove()

	assert.Empty(t, parent.Children())
	assert.Nil(t, child.ParentElement())
}
