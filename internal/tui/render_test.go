package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/jpalmerr/serverboard/internal/dom"
	"github.com/jpalmerr/serverboard/internal/status"
	"github.com/jpalmerr/serverboard/internal/view"
)

func reconciled(servers ...status.ServerStatus) *dom.Element {
	container := dom.New("section", "server-list", "")
	r := view.NewReconciler(view.NewDOMSurface(container, view.EnglishLabels()))
	r.Render(servers)
	return container
}

func TestRenderView_Nil(t *testing.T) {
	assert.Empty(t, RenderView(nil, 80))
}

func TestRenderView_NoCards(t *testing.T) {
	assert.Empty(t, RenderView(dom.New("section", "server-list", ""), 80))
}

func TestRenderView_EmptyMessage(t *testing.T) {
	out := RenderView(reconciled(), 80)
	assert.Contains(t, out, view.EnglishLabels().Empty)
}

func TestRenderView_CardContent(t *testing.T) {
	offline := server("2")
	offline.Online = false
	offline.PlayersKnown = status.Bool(false)

	out := RenderView(reconciled(server("1", "alice", "bob"), offline), 0)

	for _, want := range []string{
		"Server 1", "online", "Address: 1.example.com:25565", "Latency: 12 ms",
		"Players online: 2/20", "alice", "bob",
		"Server 2", "offline", "roster unavailable",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderView_EmptyRosterPlaceholder(t *testing.T) {
	out := RenderView(reconciled(server("1")), 60)
	assert.Contains(t, out, "none")
}

func TestRenderView_SingleCardSpansWidth(t *testing.T) {
	root := reconciled(server("1"))
	assert.True(t, root.HasClass(view.ClassSingle))

	out := RenderView(root, 100)
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestRenderView_GridLayout(t *testing.T) {
	root := reconciled(server("1"), server("2"), server("3"), server("4"))

	out := RenderView(root, 120)

	// three default-width cards per row, the fourth wraps
	assert.Equal(t, 3*DefaultCardWidth, lipgloss.Width(out))
	firstRow := strings.Split(out, "\n")[1]
	assert.Contains(t, firstRow, "Server 1")
	assert.Contains(t, firstRow, "Server 3")
	assert.NotContains(t, firstRow, "Server 4")
	assert.Contains(t, out, "Server 4")
}

func TestRenderView_NarrowTerminal(t *testing.T) {
	out := RenderView(reconciled(server("1"), server("2")), 10)
	assert.Equal(t, MinCardWidth, lipgloss.Width(out))
}

func TestRenderPlayers_Wraps(t *testing.T) {
	players := dom.New("div", classPlayers, "")
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		players.AppendChild(dom.New("span", classChip, name))
	}

	lines := renderPlayers(players, 16)

	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 16)
	}
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "a    b", spread("a", "b", 6))
	assert.Equal(t, "abc def", spread("abc", "def", 2))
}
