package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type action string

type binding struct {
	action action
	keys   []string
	help   string
}

// keyRegistry maps key names to actions per scope. Lookups fall back to
// the global scope when the active scope has no binding for a key.
type keyRegistry struct {
	bindingsByScope map[string][]*binding
	indexByScope    map[string]map[string]*binding
}

const (
	scopeGlobal   = "global"
	scopeLogin    = "login"
	scopeCapture  = "capture"
	scopeResult   = "result"
	scopeBanking  = "banking"
	scopeTransfer = "transfer"
	scopeSecurity = "security"
)

const (
	actionQuit             action = "quit"
	actionTheme            action = "theme"
	actionSubmit           action = "submit"
	actionField            action = "field"
	actionReveal           action = "reveal"
	actionCancel           action = "cancel"
	actionCopy             action = "copy"
	actionContinue         action = "continue"
	actionRetry            action = "retry"
	actionNextTab          action = "next_tab"
	actionPrevTab          action = "prev_tab"
	actionJumpTab          action = "jump_tab"
	actionToggleBalance    action = "toggle_balance"
	actionReauth           action = "reauth"
	actionLogout           action = "logout"
	actionNavigate         action = "navigate"
	actionSend             action = "send"
	actionAcceptSuggestion action = "accept_suggestion"
	actionBack             action = "back"
)

func newKeyRegistry() *keyRegistry {
	r := &keyRegistry{
		bindingsByScope: make(map[string][]*binding),
		indexByScope:    make(map[string]map[string]*binding),
	}
	reg := func(scope string, a action, keys []string, help string) {
		r.register(scope, binding{action: a, keys: keys, help: help})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")
	reg(scopeGlobal, actionTheme, []string{"ctrl+t"}, "theme")

	reg(scopeLogin, actionSubmit, []string{"enter", "ctrl+s"}, "sign in")
	reg(scopeLogin, actionField, []string{"tab", "shift+tab", "up", "down"}, "field")
	reg(scopeLogin, actionReveal, []string{"ctrl+r"}, "show password")

	reg(scopeCapture, actionCancel, []string{"esc", "x"}, "cancel")
	reg(scopeCapture, actionQuit, []string{"q"}, "quit")

	reg(scopeResult, actionContinue, []string{"enter"}, "continue")
	reg(scopeResult, actionCopy, []string{"c"}, "copy hash")
	reg(scopeResult, actionRetry, []string{"r"}, "re-authenticate")
	reg(scopeResult, actionQuit, []string{"q"}, "quit")

	bankingTabs := func(scope string) {
		reg(scope, actionNextTab, []string{"tab"}, "next tab")
		reg(scope, actionPrevTab, []string{"shift+tab"}, "prev tab")
	}

	bankingTabs(scopeBanking)
	reg(scopeBanking, actionJumpTab, []string{"1-4", "1", "2", "3", "4"}, "tabs")
	reg(scopeBanking, actionToggleBalance, []string{"b"}, "balance")
	reg(scopeBanking, actionReauth, []string{"s"}, "re-auth")
	reg(scopeBanking, actionLogout, []string{"L", "ctrl+l"}, "logout")
	reg(scopeBanking, actionQuit, []string{"q"}, "quit")

	reg(scopeSecurity, actionNavigate, []string{"j/k", "j", "k", "up", "down"}, "select hash")
	reg(scopeSecurity, actionCopy, []string{"c"}, "copy hash")
	bankingTabs(scopeSecurity)
	reg(scopeSecurity, actionJumpTab, []string{"1-4", "1", "2", "3", "4"}, "tabs")
	reg(scopeSecurity, actionReauth, []string{"s"}, "re-auth")
	reg(scopeSecurity, actionLogout, []string{"L", "ctrl+l"}, "logout")
	reg(scopeSecurity, actionQuit, []string{"q"}, "quit")

	// Transfer holds text inputs, so only non-printable keys are bound.
	reg(scopeTransfer, actionSend, []string{"enter"}, "send")
	reg(scopeTransfer, actionField, []string{"up", "down"}, "field")
	reg(scopeTransfer, actionAcceptSuggestion, []string{"ctrl+y"}, "use suggestion")
	bankingTabs(scopeTransfer)
	reg(scopeTransfer, actionBack, []string{"esc"}, "overview")
	reg(scopeTransfer, actionLogout, []string{"ctrl+l"}, "logout")

	return r
}

func (r *keyRegistry) register(scope string, b binding) {
	scope = strings.TrimSpace(scope)
	if r == nil || scope == "" {
		return
	}
	keys := normalizeKeyList(b.keys)
	if len(keys) == 0 || r.scopeHasAnyKey(scope, keys) {
		return
	}
	if _, ok := r.indexByScope[scope]; !ok {
		r.indexByScope[scope] = make(map[string]*binding)
	}
	stored := b
	stored.keys = keys
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &stored)
	for _, k := range keys {
		r.indexByScope[scope][k] = &stored
	}
}

// lookup resolves a key in scope, then in the global scope.
func (r *keyRegistry) lookup(keyName, scope string) *binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.indexByScope[scope][keyName]; b != nil {
		return b
	}
	if scope != scopeGlobal {
		return r.indexByScope[scopeGlobal][keyName]
	}
	return nil
}

// helpBindings lists scope bindings followed by the global ones.
func (r *keyRegistry) helpBindings(scope string) []key.Binding {
	var out []key.Binding
	add := func(items []*binding) {
		for _, b := range items {
			out = append(out, key.NewBinding(key.WithKeys(b.keys...), key.WithHelp(b.keys[0], b.help)))
		}
	}
	add(r.bindingsByScope[scope])
	if scope != scopeGlobal {
		add(r.bindingsByScope[scopeGlobal])
	}
	return out
}

func (r *keyRegistry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if len(trimmed) == 1 {
		// Single uppercase runes stay distinct from their lowercase keys.
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
