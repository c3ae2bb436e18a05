package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nardogod/diaryquest/internal/catalog"
	"github.com/nardogod/diaryquest/internal/engine"
)

type boardModel struct {
	ctx    context.Context
	svc    *engine.Service
	userID string

	width  int
	height int

	status *engine.Status

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	status *engine.Status
	err    error
}

type actionMsg struct {
	label string
	res   *engine.ActionResult
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service, userID string) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		userID:  userID,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.GetStatus(m.ctx, m.userID)
		return loadedMsg{status: st, err: err}
	}
}

func (m boardModel) relaxCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UseRelax(m.ctx, m.userID)
		return actionMsg{label: "Relax", res: res, err: err}
	}
}

func (m boardModel) workCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UseWorkBonus(m.ctx, m.userID)
		return actionMsg{label: "Work bonus", res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actionMsg:
		if msg.err != nil {
			var cd engine.CooldownError
			if errors.As(msg.err, &cd) {
				m.lastLog = fmt.Sprintf("%s on cooldown until %s.", msg.label, cd.NextAvailableAt.Local().Format("15:04"))
			} else {
				m.lastLog = msg.label + " failed: " + msg.err.Error()
			}
			return m, nil
		}
		if msg.res.Died {
			m.lastLog = msg.label + " drained the last health point. Back to square one."
		} else {
			m.lastLog = fmt.Sprintf("%s: coins %+d, health %+d, stress %+d.", msg.label, msg.res.Coins, msg.res.Health, msg.res.Stress)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "x":
			m.lastLog = "Relaxing…"
			return m, m.relaxCmd()
		case "w":
			m.lastLog = "Putting in extra hours…"
			return m, m.workCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.status == nil {
		return "DiaryQuest — loading…"
	}
	p := m.status.Profile
	bar := progressBar(m.status.XPInCurrentLevel, m.status.XPForNextLevel, 30)
	return fmt.Sprintf("DiaryQuest | %s | Level %d %s | %d coins", p.UserID, p.Level, bar, p.Coins)
}

func (m boardModel) renderSidebar() string {
	if m.status == nil {
		return "Vitals\n\nLoading…"
	}
	p := m.status.Profile
	lines := []string{"Vitals"}
	lines = append(lines, fmt.Sprintf("- Health %3d %s", p.Health, progressBar(p.Health, catalog.MaxHealth, 12)))
	lines = append(lines, fmt.Sprintf("- Stress %3d %s", p.Stress, progressBar(p.Stress, catalog.StressCap, 12)))
	if m.status.IsSick {
		lines = append(lines, "- SICK: rewards suffer until health recovers")
	}
	if m.status.IsBurnout {
		lines = append(lines, "- BURNOUT: take a break")
	}
	lines = append(lines, "")
	lines = append(lines, "Home")
	eq := engine.EquipmentNames(p)
	lines = append(lines, "- house: "+eq["house"])
	lines = append(lines, "- work room: "+eq["work_room"])
	if pet, ok := eq["pet"]; ok {
		lines = append(lines, "- pet: "+pet)
	}
	if g, ok := eq["guardian"]; ok {
		lines = append(lines, "- guardian: "+g)
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- x: relax")
	lines = append(lines, "- w: work bonus")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Missions")
	for _, ms := range catalog.Missions() {
		mark := "[ ]"
		if m.status.Completed[ms.ID] {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s %s — %s (+%d coins)", mark, ms.Name, ms.Description, ms.CoinReward))
	}
	out = append(out, "")
	out = append(out, "Badges")
	if len(m.status.Badges) == 0 {
		out = append(out, "(none yet)")
	} else {
		for _, b := range m.status.Badges {
			out = append(out, "- "+b)
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
