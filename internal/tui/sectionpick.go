package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minkyu-lab/site-factory/internal/scanner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#007AFF")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#34C759"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#007AFF")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8E93"))
)

// rowRef 커서가 가리키는 위젯의 위치 (섹션 번호, 주입 가능 위젯 순번)
type rowRef struct {
	section int
	widget  int
}

// PickModel 섹션별 주입 포인트 선택 TUI 모델
type PickModel struct {
	sections []scanner.Section
	names    []string // 섹션 이름 (r 키로 수정 가능)
	rows     []rowRef // 주입 가능한 위젯만 펼친 목록
	perRow   []scanner.SectionWidget
	cursor   int
	selected map[int]bool
	renaming bool
	input    textinput.Model
	done     bool
	aborted  bool
}

// NewPickModel 선택 모델을 만든다. 예: NewPickModel(sections)
func NewPickModel(sections []scanner.Section) PickModel {
	input := textinput.New()
	input.Placeholder = "섹션 이름"
	input.CharLimit = 40

	model := PickModel{
		sections: sections,
		selected: map[int]bool{},
		input:    input,
	}

	for sectionIndex, section := range sections {
		model.names = append(model.names, section.SuggestedName)
		injectableIndex := 0
		for _, widget := range section.Widgets {
			if !widget.Injectable {
				continue
			}
			model.rows = append(model.rows, rowRef{section: sectionIndex, widget: injectableIndex})
			model.perRow = append(model.perRow, widget)
			injectableIndex++
		}
	}

	return model
}

// Init bubbletea 초기화
func (m PickModel) Init() tea.Cmd {
	return nil
}

// Update 키 입력을 처리한다
func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.renaming {
		return m.updateRenaming(keyMsg)
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case " ":
		if len(m.rows) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "r":
		if len(m.rows) > 0 {
			m.renaming = true
			m.input.SetValue(m.names[m.rows[m.cursor].section])
			m.input.Focus()
			return m, textinput.Blink
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PickModel) updateRenaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name != "" {
			m.names[m.rows[m.cursor].section] = name
		}
		m.renaming = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.renaming = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View 화면을 렌더링한다
func (m PickModel) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("페이지 구조 분석 결과") + "\n\n")

	if len(m.rows) == 0 {
		s.WriteString("주입 가능한 위젯이 없습니다.\n")
		s.WriteString(helpStyle.Render("q: 종료"))
		return s.String()
	}

	lastSection := -1
	for rowIndex, ref := range m.rows {
		if ref.section != lastSection {
			lastSection = ref.section
			section := m.sections[ref.section]
			header := fmt.Sprintf("섹션 %d: %s", section.Index, m.names[ref.section])
			s.WriteString("\n" + sectionStyle.Render(header) + "\n")
		}

		widget := m.perRow[rowIndex]
		marker := "[ ]"
		if m.selected[rowIndex] {
			marker = "[x]"
		}

		line := fmt.Sprintf("%s %-12s │ %s", marker, widget.WidgetTypeKR, previewStyle.Render(widget.Preview))
		if rowIndex == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("%s %-12s", marker, widget.WidgetTypeKR)) +
				" │ " + previewStyle.Render(widget.Preview)
		}
		s.WriteString("  " + line + "\n")
	}

	s.WriteString("\n")
	if m.renaming {
		s.WriteString("섹션 이름: " + m.input.View() + "\n")
		s.WriteString(helpStyle.Render("Enter: 확정 • ESC: 취소"))
	} else {
		s.WriteString(helpStyle.Render("↑/↓: 이동 • Space: 선택 • r: 섹션 이름 변경 • Enter: 완료 • q: 취소"))
	}

	return s.String()
}

// Selections 선택된 주입 포인트를 반환한다. 취소했으면 nil.
func (m PickModel) Selections() []scanner.SelectedInjection {
	if m.aborted {
		return nil
	}

	var selections []scanner.SelectedInjection
	for rowIndex, ref := range m.rows {
		if !m.selected[rowIndex] {
			continue
		}
		widget := m.perRow[rowIndex]
		section := m.sections[ref.section]
		selections = append(selections, scanner.SelectedInjection{
			Section:      m.names[ref.section],
			SectionIndex: section.Index,
			WidgetIndex:  ref.widget,
			ElementID:    widget.ElementID,
			WidgetType:   widget.WidgetType,
			Path:         widget.Path,
			Preview:      widget.Preview,
		})
	}
	return selections
}

// RunSectionPicker 대화형 선택 화면을 실행한다. 취소 시 nil을 반환한다.
func RunSectionPicker(sections []scanner.Section) ([]scanner.SelectedInjection, error) {
	program := tea.NewProgram(NewPickModel(sections))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("대화형 선택 실행에 실패했습니다: %w", err)
	}

	model, ok := final.(PickModel)
	if !ok {
		return nil, fmt.Errorf("대화형 선택 결과를 해석할 수 없습니다.")
	}
	return model.Selections(), nil
}
