package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/shlint/internal/model"
)

// issueItem is one row of the issue browser.
type issueItem struct {
	path     string
	line     int
	severity m.Severity
	rule     string
	message  string
}

// FilterValue lets the list filter on path and rule.
func (i issueItem) FilterValue() string {
	return i.path + " " + i.rule
}

func severityStyle(severity m.Severity) lipgloss.Style {
	switch severity {
	case m.SeverityError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case m.SeverityWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}
}

// Simple delegate for issue list items.
type issueDelegate struct{}

func (d issueDelegate) Height() int  { return 1 }
func (d issueDelegate) Spacing() int { return 0 }
func (d issueDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d issueDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	issue, ok := item.(issueItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	location := fmt.Sprintf("%s:%d", issue.path, issue.line)
	text := fmt.Sprintf("%-8s %s  %s", issue.severity.String(), location, issue.message)
	text = truncateToWidth(text, lm.Width()-2)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		_, _ = fmt.Fprint(w, selected.Render(text))

		return
	}

	_, _ = fmt.Fprint(w, severityStyle(issue.severity).Render(text))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// issueModel is the Bubble Tea model backing the issue browser.
type issueModel struct {
	width      int
	height     int
	issueList  list.Model
	totalFiles int
	counts     [3]int
}

func newIssueModel(results []m.FileResult) issueModel {
	model := issueModel{totalFiles: len(results)}

	items := make([]list.Item, 0)

	for _, result := range results {
		for _, issue := range result.Issues {
			model.counts[issue.Severity]++

			items = append(items, issueItem{
				path:     string(result.Path),
				line:     issue.Line,
				severity: issue.Severity,
				rule:     issue.Rule,
				message:  issue.Message,
			})
		}
	}

	issueList := list.New(items, issueDelegate{}, 80, 20)
	issueList.SetShowPagination(false)
	issueList.SetShowFilter(true)
	issueList.SetShowHelp(false)
	issueList.SetShowTitle(false)
	issueList.SetShowStatusBar(false)
	issueList.FilterInput.Placeholder = "Filter by path or rule…"

	model.issueList = issueList

	return model
}

// needsPagination reports whether the list is too long to print flat.
func (mm issueModel) needsPagination() bool {
	limit := mm.height - 6
	if limit < 5 {
		limit = 20
	}

	return len(mm.issueList.Items()) > limit
}

func (mm issueModel) Init() tea.Cmd {
	return nil
}

func (mm issueModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		mm.width = msg.Width
		mm.height = msg.Height
		mm.issueList.SetWidth(mm.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return mm, tea.Quit
		default:
			var newList list.Model

			newList, cmd = mm.issueList.Update(msg)
			mm.issueList = newList

			return mm, cmd
		}
	}

	return mm, cmd
}

func (mm issueModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	title := titleStyle.Render("shlint report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %d   Errors: %s   Warnings: %s   Info: %s",
		mm.totalFiles,
		severityStyle(m.SeverityError).Render(fmt.Sprintf("%d", mm.counts[m.SeverityError])),
		severityStyle(m.SeverityWarning).Render(fmt.Sprintf("%d", mm.counts[m.SeverityWarning])),
		severityStyle(m.SeverityInfo).Render(fmt.Sprintf("%d", mm.counts[m.SeverityInfo])),
	))

	if len(mm.issueList.Items()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, summary, "  No issues found\n")
	}

	if !mm.needsPagination() {
		var rows string
		for _, item := range mm.issueList.Items() {
			issue, ok := item.(issueItem)
			if !ok {
				continue
			}

			rows += fmt.Sprintf("  %s %s:%d  %s\n",
				severityStyle(issue.severity).Render(fmt.Sprintf("%-8s", issue.severity)),
				issue.path, issue.line, issue.message)
		}

		return lipgloss.JoinVertical(lipgloss.Left, title, summary, rows)
	}

	listHeight := mm.height - 8
	if listHeight < 5 {
		listHeight = 5
	}

	mm.issueList.SetHeight(listHeight)
	mm.issueList.SetWidth(mm.width - 4)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(mm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		mm.issueList.View(),
		footer,
	)
}
