package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partdex/internal/adapters/tui/styles"
	"partdex/internal/application/commands"
	"partdex/internal/domain"
	"partdex/internal/ports"
	"partdex/internal/registry"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	New    key.Binding
	Edit   key.Binding
	Yank   key.Binding
	Search key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy ID"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the catalog tree browser
type BrowserModel struct {
	repo  ports.CatalogRepository
	rules *registry.Ruleset

	result     *registry.Result
	root       *domain.TreeNode
	flatNodes  []*domain.TreeNode
	cursor     int
	width      int
	height     int
	message    string
	messageErr bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.CatalogRepository, rules *registry.Ruleset) *BrowserModel {
	return &BrowserModel{
		repo:  repo,
		rules: rules,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	result, err := commands.NewBuildCommand(m.repo, m.rules, false).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{result}
}

type treeLoadedMsg struct {
	result *registry.Result
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case treeLoadedMsg:
		m.result = msg.result
		m.root = domain.BuildTree(msg.result.Categories, msg.result.Families, msg.result.Components)
		m.refreshFlatNodes()
		if n := len(msg.result.Errors); n > 0 {
			m.Fail(fmt.Sprintf("%d registry errors, run a build for details", n))
		}
		return m, nil

	case errMsg:
		m.Fail(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && len(node.Children) > 0 {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.ID != "" {
					// Move to parent
					for i, n := range m.flatNodes {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				if node.Type == domain.NodeComponent {
					return m, func() tea.Msg {
						return SwitchToDetailMsg{ID: node.ID}
					}
				}
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			if node := m.selectedNode(); node != nil {
				target := createTarget(node)
				return m, func() tea.Msg {
					return SwitchToCreateMsg{Target: target}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if node := m.selectedNode(); node != nil && node.Type == domain.NodeComponent && node.Path != "" {
				path := m.repo.AbsPath(node.Path)
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: path}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Yank):
			if node := m.selectedNode(); node != nil {
				m.yankNode(node)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Search):
			return m, func() tea.Msg {
				return SwitchToSearchMsg{}
			}

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// createTarget picks the allocation target for a new component relative to
// the selected node: the node itself for categories and families, the
// enclosing category or family for components.
func createTarget(node *domain.TreeNode) string {
	if node.Type == domain.NodeComponent {
		if node.Parent != nil {
			return node.Parent.ID
		}
		return ""
	}
	return node.ID
}

// yankNode copies the selected component's ID, or the next free ID of the
// selected category or family, to the system clipboard.
func (m *BrowserModel) yankNode(node *domain.TreeNode) {
	value := node.ID
	label := node.ID

	switch node.Type {
	case domain.NodeCategory:
		cat, ok := m.result.Category(node.ID)
		if !ok || cat.NextID == "" {
			m.Fail(fmt.Sprintf("category %s has no free ID", node.ID))
			return
		}
		value = cat.NextID
		label = fmt.Sprintf("%s (next in %s)", cat.NextID, node.ID)

	case domain.NodeFamily:
		fam, ok := m.result.Family(node.ID)
		if !ok || fam.NextID == "" {
			m.Fail(fmt.Sprintf("family %s has no free ID", node.ID))
			return
		}
		value = fam.NextID
		label = fmt.Sprintf("%s (next in %s)", fam.NextID, node.ID)
	}

	if err := clipboard.WriteAll(value); err != nil {
		m.Fail(fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.Notify("Copied " + label)
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// browserChrome is the number of terminal rows taken by everything
// around the tree: frame padding, title block, message and help lines.
const browserChrome = 9

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Partdex"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Component ID Registry"))
	b.WriteString("\n\n")

	// Tree, scrolled to keep the cursor visible
	start, end := m.visibleBounds()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flatNodes[i], i == m.cursor))
		b.WriteString("\n")
	}

	// Message
	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.message, m.messageErr))
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

// visibleBounds limits the tree to the rows that fit the terminal,
// scrolled so the cursor stays in view. Before the first resize message
// the whole tree is rendered.
func (m *BrowserModel) visibleBounds() (int, int) {
	rows := m.height - browserChrome
	if m.height == 0 || rows < 1 || len(m.flatNodes) <= rows {
		return 0, len(m.flatNodes)
	}

	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > len(m.flatNodes) {
		start = len(m.flatNodes) - rows
	}
	return start, start + rows
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth()-1)

	// Prefix (expand indicator)
	var prefix string
	if node.Type == domain.NodeComponent {
		prefix = styles.TreeLeaf
	} else if node.IsExpanded {
		prefix = styles.TreeExpanded
	} else {
		prefix = styles.TreeCollapsed
	}

	// Format: "ID Name"
	text := fmt.Sprintf("%s %s", node.ID, node.Name)

	// Apply style based on type
	var style lipgloss.Style
	switch node.Type {
	case domain.NodeCategory:
		style = styles.NodeCategory.Foreground(styles.CategoryColor(node.ID))
	case domain.NodeFamily:
		style = styles.NodeFamily
	default:
		style = styles.NodeComponent
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText, m.renderNextID(node))
}

// renderNextID annotates categories and families with their next free ID.
func (m *BrowserModel) renderNextID(node *domain.TreeNode) string {
	if m.result == nil {
		return ""
	}

	var next string
	switch node.Type {
	case domain.NodeCategory:
		if cat, ok := m.result.Category(node.ID); ok {
			next = cat.NextID
		}
	case domain.NodeFamily:
		if fam, ok := m.result.Family(node.ID); ok {
			next = fam.NextID
		}
	default:
		return ""
	}

	if next == "" {
		return styles.ErrorMsg.Render("  full")
	}
	return styles.NodeAnnotation.Render("  next " + next)
}

// browserFooterKeys is the condensed footer line; the full bindings are
// listed on the help screen.
var browserFooterKeys = []key.Binding{
	key.NewBinding(key.WithHelp("j/k", "navigate")),
	key.NewBinding(key.WithHelp("h/l", "collapse/expand")),
	key.NewBinding(key.WithHelp("enter", "open")),
	key.NewBinding(key.WithHelp("n", "new")),
	key.NewBinding(key.WithHelp("e", "edit")),
	key.NewBinding(key.WithHelp("y", "copy ID")),
	key.NewBinding(key.WithHelp("/", "search")),
	key.NewBinding(key.WithHelp("?", "help")),
	key.NewBinding(key.WithHelp("q", "quit")),
}

func (m *BrowserModel) renderHelpLine() string {
	return RenderHelpLine(browserFooterKeys...)
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Notify shows text as a neutral status message.
func (m *BrowserModel) Notify(text string) {
	m.message = text
	m.messageErr = false
}

// Fail shows text as an error status message.
func (m *BrowserModel) Fail(text string) {
	m.message = text
	m.messageErr = true
}

// Reload reloads the catalog from disk
func (m *BrowserModel) Reload() tea.Cmd {
	m.result = nil
	m.root = nil
	m.flatNodes = nil
	m.cursor = 0
	return m.loadTree
}

// Messages for view switching
type SwitchToCreateMsg struct {
	Target string
}

type SwitchToDetailMsg struct {
	ID string
}

type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}

// OpenEditorMsg asks the application to open a page in the external editor
type OpenEditorMsg struct {
	Path string
}
