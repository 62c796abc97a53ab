package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/hashgait/internal/mock"
	"github.com/jask/hashgait/internal/nav"
	"github.com/jask/hashgait/internal/widgets"
)

type bankTab int

const (
	tabOverview bankTab = iota
	tabAccounts
	tabTransfer
	tabSecurity
	bankTabCount
)

var bankTabNames = []string{"Overview", "Accounts", "Transfer", "Security"}

const (
	recentTxCount = 4
	sensorUnit    = " m/s²"
)

const (
	transferTo = iota
	transferAmount
	transferMemo
	transferFieldCount
)

// sensorTickMsg refreshes the gauges. from pins it to the refresh scope
// that scheduled it; ticks from an earlier visit to the tab are dropped.
type sensorTickMsg struct{ from *scope }

type bankingScreen struct {
	env         *env
	sc          *scope
	username    string
	sessionID   string
	since       time.Time
	tab         bankTab
	showBalance bool

	account    mock.Account
	txs        []mock.Transaction
	cards      []mock.Card
	recipients []mock.Recipient
	stats      mock.Stats
	hashes     []mock.HashRecord

	inputs     [transferFieldCount]textinput.Model
	field      int
	suggestion *mock.Recipient

	sensor     mock.SensorReading
	sensorSc   *scope
	hashCursor int
	copy       copier
}

func newBankingScreen(e *env, sc *scope, sess *nav.Session) *bankingScreen {
	now := e.now()
	s := &bankingScreen{
		env:         e,
		sc:          sc,
		username:    e.cfg.UI.DefaultUsername,
		since:       now,
		showBalance: true,
		account:     e.gen.Account(),
		txs:         e.gen.Transactions(now),
		recipients:  e.gen.Recipients(),
		stats:       e.gen.Stats(),
		hashes:      e.gen.RecentHashes(now),
		copy:        newCopier(e),
	}
	if sess != nil {
		s.username = sess.Username
		s.sessionID = sess.ID
		s.since = sess.StartedAt
	}
	s.cards = e.gen.Cards(s.account)

	placeholders := [transferFieldCount]string{"Name or email", "0.00", "What's it for? (optional)"}
	for i := range s.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		s.inputs[i] = in
	}
	s.inputs[transferAmount].CharLimit = 12
	return s
}

func (s *bankingScreen) scope() *scope { return s.sc }

func (s *bankingScreen) keyScope() string {
	switch s.tab {
	case tabTransfer:
		return scopeTransfer
	case tabSecurity:
		return scopeSecurity
	default:
		return scopeBanking
	}
}

func (s *bankingScreen) init() tea.Cmd { return nil }

func (s *bankingScreen) update(msg tea.Msg) (tea.Cmd, nav.Event) {
	if cmd, ok := s.copy.update(msg); ok {
		return cmd, nil
	}
	switch msg := msg.(type) {
	case sensorTickMsg:
		if s.sensorSc == nil || msg.from != s.sensorSc {
			return nil, nil
		}
		s.sensor = s.env.gen.Sensor()
		return s.sensorSc.after(s.env.cfg.Timing.SensorInterval, sensorTickMsg{from: s.sensorSc}), nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	if s.tab == tabTransfer {
		return s.updateInput(msg), nil
	}
	return nil, nil
}

func (s *bankingScreen) handleKey(msg tea.KeyMsg) (tea.Cmd, nav.Event) {
	switch s.env.lookupKey(msg, s) {
	case actionNextTab:
		return s.setTab((s.tab + 1) % bankTabCount), nil
	case actionPrevTab:
		return s.setTab((s.tab + bankTabCount - 1) % bankTabCount), nil
	case actionJumpTab:
		return s.setTab(bankTab(msg.String()[0] - '1')), nil
	case actionBack:
		return s.setTab(tabOverview), nil
	case actionToggleBalance:
		s.showBalance = !s.showBalance
		return nil, nil
	case actionReauth:
		s.env.logger.Info("re-authentication requested", "user", s.username)
		return nil, nav.ReauthRequested{}
	case actionLogout:
		s.env.logger.Info("signed out", "user", s.username)
		return nil, nav.LoggedOut{}
	case actionNavigate:
		switch msg.String() {
		case "k", "up":
			s.hashCursor = max(0, s.hashCursor-1)
		default:
			s.hashCursor = min(len(s.hashes)-1, s.hashCursor+1)
		}
		return nil, nil
	case actionCopy:
		if len(s.hashes) == 0 {
			return nil, nil
		}
		h := s.hashes[s.hashCursor].Hash
		return s.copy.copy(s.sc, h, h), nil
	case actionField:
		dir := 1
		if msg.String() == "up" {
			dir = transferFieldCount - 1
		}
		return s.focusField((s.field + dir) % transferFieldCount), nil
	case actionAcceptSuggestion:
		if s.suggestion != nil {
			s.inputs[transferTo].SetValue(s.suggestion.Name)
			s.inputs[transferTo].CursorEnd()
			s.suggestion = nil
		}
		return nil, nil
	case actionSend:
		return s.send(), nil
	}
	if s.tab == tabTransfer {
		return s.updateInput(msg), nil
	}
	return nil, nil
}

func (s *bankingScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.field], cmd = s.inputs[s.field].Update(msg)
	if s.field == transferTo {
		s.suggestion = suggestRecipient(s.inputs[transferTo].Value(), s.recipients)
	}
	return cmd
}

// setTab switches tabs. The sensor refresh runs only while the security
// tab is showing.
func (s *bankingScreen) setTab(tab bankTab) tea.Cmd {
	if tab < 0 || tab >= bankTabCount || tab == s.tab {
		return nil
	}
	if s.tab == tabSecurity && s.sensorSc != nil {
		s.sensorSc.close()
		s.sensorSc = nil
	}
	if s.tab == tabTransfer {
		s.inputs[s.field].Blur()
	}
	s.tab = tab
	switch tab {
	case tabSecurity:
		s.sensorSc = s.sc.child()
		s.sensor = s.env.gen.Sensor()
		return s.sensorSc.after(s.env.cfg.Timing.SensorInterval, sensorTickMsg{from: s.sensorSc})
	case tabTransfer:
		return s.inputs[s.field].Focus()
	}
	return nil
}

func (s *bankingScreen) focusField(i int) tea.Cmd {
	s.inputs[s.field].Blur()
	s.field = i
	return s.inputs[s.field].Focus()
}

// send validates the form and reports that nothing moved.
func (s *bankingScreen) send() tea.Cmd {
	to := strings.TrimSpace(s.inputs[transferTo].Value())
	if to == "" {
		return notify(slog.LevelWarn, "Enter a recipient")
	}
	cents, err := parseAmount(s.inputs[transferAmount].Value())
	if err != nil {
		return notify(slog.LevelWarn, "Enter an amount greater than zero")
	}
	amount := formatMoney(s.env.cfg.UI.CurrencySymbol, cents)
	s.env.logger.Info("demo transfer", "to", to, "amount", amount)
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.suggestion = nil
	return tea.Batch(
		s.focusField(transferTo),
		notify(slog.LevelInfo, fmt.Sprintf("Demo only: %s to %s was not sent", amount, to)),
	)
}

// parseAmount reads a positive decimal amount into cents.
func parseAmount(text string) (int64, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if !(v > 0) || v > 1e12 {
		return 0, fmt.Errorf("amount %q out of range", text)
	}
	cents := int64(v*100 + 0.5)
	if cents <= 0 {
		return 0, fmt.Errorf("amount %q rounds to zero", text)
	}
	return cents, nil
}

// suggestRecipient finds the recent recipient closest to query by edit
// distance, comparing against name and email prefixes of the query's
// length so partial input matches. Exact matches get no suggestion.
func suggestRecipient(query string, recipients []mock.Recipient) *mock.Recipient {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < 3 {
		return nil
	}
	limit := max(1, len([]rune(q))/3)
	var best *mock.Recipient
	bestDist := limit + 1
	for i := range recipients {
		for _, cand := range []string{recipients[i].Name, recipients[i].Email} {
			cand = strings.ToLower(cand)
			if cand == q {
				return nil
			}
			prefix := []rune(cand)
			if len(prefix) > len([]rune(q)) {
				prefix = prefix[:len([]rune(q))]
			}
			d := min(levenshtein.ComputeDistance(q, string(prefix)), levenshtein.ComputeDistance(q, cand))
			if d < bestDist {
				best, bestDist = &recipients[i], d
			}
		}
	}
	return best
}

func (s *bankingScreen) balance(cents int64) string {
	if !s.showBalance {
		return maskedBalance
	}
	return formatMoney(s.env.cfg.UI.CurrencySymbol, cents)
}

func (s *bankingScreen) view(width int) string {
	var body string
	switch s.tab {
	case tabAccounts:
		body = s.viewAccounts(width)
	case tabTransfer:
		body = s.viewTransfer(width)
	case tabSecurity:
		body = s.viewSecurity(width)
	default:
		body = s.viewOverview(width)
	}
	return s.viewHeader(width) + "\n" + s.viewTabs(width) + "\n\n" + body
}

func (s *bankingScreen) viewHeader(width int) string {
	st := s.env.styles
	avatar := lipgloss.NewStyle().
		Foreground(st.theme.Mantle).
		Background(st.theme.Brand).
		Bold(true).
		Padding(0, 1).
		Render(initials(s.username))
	who := st.text.Render(greeting(s.env.now().Hour())+", ") + st.accent.Render(s.username)
	left := avatar + " " + who
	right := widgets.Badge("Gait ✓", st.theme.Success)
	if len(s.sessionID) >= 8 {
		right = st.faint.Render("#"+s.sessionID[:8]) + " " + right
	}
	return st.header.Render(widgets.Row{Left: left, Right: right}.Render(width - 2))
}

func (s *bankingScreen) viewTabs(width int) string {
	st := s.env.styles
	tabs := make([]string, len(bankTabNames))
	for i, name := range bankTabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if bankTab(i) == s.tab {
			tabs[i] = st.activeTab.Render(label)
		} else {
			tabs[i] = st.tab.Render(label)
		}
	}
	return widgets.PadRight(strings.Join(tabs, st.tabSep.Render("│")), width)
}

func (s *bankingScreen) viewOverview(width int) string {
	st := s.env.styles
	sym := s.env.cfg.UI.CurrencySymbol
	inner := width - 4

	change := st.success.Render(fmt.Sprintf("↑ %+.1f%% this month", s.account.MonthChange))
	if s.account.MonthChange < 0 {
		change = st.errorText.Render(fmt.Sprintf("↓ %.1f%% this month", s.account.MonthChange))
	}
	balance := widgets.Card{
		Title:      "Total Balance",
		TitleStyle: st.label,
		Body: st.money.Render(s.balance(s.account.BalanceCents)) + "\n" +
			change + "\n" +
			st.faint.Render("Checking "+s.account.Number) + "\n\n" +
			st.accent.Render("↗ Send") + "   " + st.accent.Render("+ Add"),
		Border: st.theme.Brand,
	}

	used := percent(s.account.CreditUsedCents, s.account.CreditLimit)
	credit := widgets.Text(widgets.Rows(inner,
		widgets.Row{Left: st.label.Render("Credit used"), Right: s.balance(s.account.CreditUsedCents) + st.faint.Render(" / "+s.balance(s.account.CreditLimit))},
		widgets.Row{Left: st.label.Render("Utilization"), Right: st.text.Render(fmt.Sprintf("%.0f%%", used*100))},
	))

	quick := widgets.Text(widgets.Rows(inner,
		widgets.Row{Left: st.text.Render("Send Money"), Right: st.faint.Render("press 3")},
		widgets.Row{Left: st.text.Render("Mobile Deposit"), Right: st.faint.Render("scan a check")},
	))

	recent := s.txs[:min(recentTxCount, len(s.txs))]
	rows := make([]widgets.Row, 0, len(recent))
	now := s.env.now()
	for _, tx := range recent {
		amount := signedMoney(sym, tx.AmountCents, tx.Type == mock.Credit)
		style := st.errorText
		if tx.Type == mock.Credit {
			style = st.success
		}
		if !s.showBalance {
			amount = maskedBalance
		}
		rows = append(rows, widgets.Row{
			Left:  st.text.Render(tx.Merchant) + " " + st.faint.Render(tx.Category+" · "+formatWhen(tx.At, now)),
			Right: style.Render(amount),
		})
	}
	activity := widgets.Card{
		Title:      "Recent Transactions",
		TitleStyle: st.title,
		Body:       widgets.Rows(inner, rows...),
		Border:     st.theme.Border,
	}

	return widgets.VStack{Widgets: []widgets.Widget{balance, quick, credit, activity}, Spacing: 1}.Render(width)
}

func (s *bankingScreen) viewAccounts(width int) string {
	st := s.env.styles
	inner := width - 4
	items := make([]widgets.Widget, 0, len(s.cards)+1)
	for _, c := range s.cards {
		title := c.Kind + "  " + st.faint.Render(c.Number)
		if c.Primary {
			title += " " + widgets.Badge("Primary Account", st.theme.Accent)
		}
		body := st.money.Render(s.balance(c.BalanceCents))
		if c.LimitCents > 0 {
			owed := c.BalanceCents
			if owed < 0 {
				owed = -owed
			}
			used := percent(owed, c.LimitCents)
			body += "\n" + st.accent.Render(widgets.Meter{Fraction: used}.Render(inner)) +
				"\n" + st.faint.Render(fmt.Sprintf("%.0f%% of %s limit", used*100, s.balance(c.LimitCents)))
		}
		items = append(items, widgets.Card{Title: title, TitleStyle: st.text, Body: body, Border: st.theme.Border})
	}
	items = append(items, widgets.Text(widgets.Rows(width,
		widgets.Row{Left: st.label.Render("Routing number"), Right: st.code.Render(s.account.Routing)},
		widgets.Row{Left: st.label.Render("Member since"), Right: st.text.Render(s.since.Format("Jan 2, 2006"))},
	)))
	return widgets.VStack{Widgets: items, Spacing: 1}.Render(width)
}

func (s *bankingScreen) viewTransfer(width int) string {
	st := s.env.styles
	inner := width - 4
	labels := [transferFieldCount]string{"To", "Amount (" + s.env.cfg.UI.CurrencySymbol + ")", "Memo"}
	lines := make([]string, 0, transferFieldCount*2+2)
	for i := range s.inputs {
		s.inputs[i].Width = inner - 2
		marker := "  "
		if i == s.field {
			marker = st.cursor.Render("› ")
		}
		lines = append(lines, st.label.Render(labels[i]), marker+s.inputs[i].View())
	}
	if s.suggestion != nil {
		lines = append(lines, st.warning.Render(fmt.Sprintf("Did you mean %s <%s>?", s.suggestion.Name, s.suggestion.Email))+
			st.faint.Render("  ctrl+y to use"))
	}
	form := widgets.Card{Title: "Send Money", TitleStyle: st.title, Body: strings.Join(lines, "\n"), Border: st.theme.Focus}

	rows := make([]widgets.Row, 0, len(s.recipients))
	for _, r := range s.recipients {
		rows = append(rows, widgets.Row{
			Left:  st.text.Render(r.Name) + " " + st.faint.Render(r.Email),
			Right: st.subtle.Render(formatMoney(s.env.cfg.UI.CurrencySymbol, r.AmountCents)),
		})
	}
	recent := widgets.Card{Title: "Recent Recipients", TitleStyle: st.title, Body: widgets.Rows(inner, rows...), Border: st.theme.Border}
	return widgets.VStack{Widgets: []widgets.Widget{form, recent}, Spacing: 1}.Render(width)
}

func (s *bankingScreen) viewSecurity(width int) string {
	st := s.env.styles
	inner := width - 4
	now := s.env.now()

	status := widgets.Row{
		Left:  st.success.Render("● Gait Auth Active"),
		Right: st.faint.Render("verified " + formatAgo(s.since, now)),
	}.Render(width)

	sensors := widgets.Card{
		Title:      "Live Sensors",
		TitleStyle: st.title,
		Body: widgets.VStack{Widgets: []widgets.Widget{
			widgets.Gauge{Label: "X", Value: s.sensor.X, Min: -2, Max: 2, Unit: sensorUnit},
			widgets.Gauge{Label: "Y", Value: s.sensor.Y, Min: -2, Max: 2, Unit: sensorUnit},
			widgets.Gauge{Label: "Z", Value: s.sensor.Z, Min: 8.81, Max: 10.81, Unit: sensorUnit},
		}}.Render(inner),
		Border: st.theme.Info,
	}

	metric := func(value, label string) widgets.Widget {
		return widgets.Text(st.accent.Render(value) + "\n" + st.faint.Render(label))
	}
	metrics := widgets.HStack{Widgets: []widgets.Widget{
		metric(strconv.Itoa(s.stats.Today), "Auths today"),
		metric(formatUptime(s.stats.Uptime), "Uptime"),
		metric(strconv.Itoa(s.stats.Total), "Total auths"),
	}, Gap: 1}

	devices := make([]widgets.Row, 0, len(s.stats.Devices))
	for i, d := range s.stats.Devices {
		state := st.faint.Render("trusted")
		if i == 0 {
			state = st.success.Render("this device")
		}
		devices = append(devices, widgets.Row{Left: st.text.Render(d), Right: state})
	}
	deviceCard := widgets.Card{Title: "Trusted Devices", TitleStyle: st.title, Body: widgets.Rows(inner, devices...), Border: st.theme.Border}

	hashRows := make([]widgets.Row, 0, len(s.hashes))
	for i, h := range s.hashes {
		marker := "  "
		label := st.code.Render(mock.ShortHash(h.Hash))
		if i == s.hashCursor {
			marker = st.cursor.Render("› ")
		}
		right := st.faint.Render(formatAgo(h.At, now))
		if s.copy.isCopied(h.Hash) {
			right = st.success.Render("✓ Copied")
		}
		hashRows = append(hashRows, widgets.Row{Left: marker + label + " " + st.success.Render(h.Status), Right: right})
	}
	hashCard := widgets.Card{Title: "Recent Hashes", TitleStyle: st.title, Body: widgets.Rows(inner, hashRows...), Border: st.theme.Border}

	return widgets.VStack{Widgets: []widgets.Widget{
		widgets.Text(status), sensors, metrics, deviceCard, hashCard,
	}, Spacing: 1}.Render(width)
}
