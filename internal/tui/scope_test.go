package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingMsg struct{ n int }

func TestAfterDelivers(t *testing.T) {
	sc := testScope(t)
	msg := sc.after(time.Millisecond, pingMsg{n: 1})()
	assert.Equal(t, pingMsg{n: 1}, msg)
}

func TestAfterReturnsNilOnceClosed(t *testing.T) {
	sc := newScope(context.Background())
	cmd := sc.after(time.Hour, pingMsg{})

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	sc.close()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("timer was not released when the scope closed")
	}
}

func TestAfterOnClosedScopeIsSilent(t *testing.T) {
	sc := newScope(context.Background())
	sc.close()
	assert.Nil(t, sc.after(0, pingMsg{})())
}

func TestGuardTagsMessages(t *testing.T) {
	sc := testScope(t)
	msg := sc.guard(func() tea.Msg { return pingMsg{n: 2} })()
	tagged, ok := msg.(scopedMsg)
	require.True(t, ok)
	assert.Same(t, sc, tagged.from)
	assert.Equal(t, pingMsg{n: 2}, tagged.msg)

	assert.Nil(t, sc.guard(nil))
	assert.Nil(t, sc.guard(func() tea.Msg { return nil })())
}

func TestUnwrapKeepsBatchTagged(t *testing.T) {
	sc := testScope(t)
	batch := tea.BatchMsg{
		func() tea.Msg { return pingMsg{n: 1} },
		func() tea.Msg { return pingMsg{n: 2} },
	}
	msgs := drain(sc.unwrap(batch))
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		tagged, ok := m.(scopedMsg)
		require.True(t, ok)
		assert.Same(t, sc, tagged.from)
	}
}

func TestChildClosesWithParent(t *testing.T) {
	parent := newScope(context.Background())
	child := parent.child()
	other := parent.child()

	other.close()
	assert.False(t, parent.closed())
	assert.False(t, child.closed())

	parent.close()
	assert.True(t, child.closed())
}
