package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lessonloop/internal/agents"
	"github.com/abhisek/lessonloop/internal/pipeline"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	cfg := agents.DefaultConfig()
	cfg.MockDelay = 0
	client := agents.NewClient(nil, cfg, nil)
	orch := pipeline.New(agents.NewGenerator(client), agents.NewReviewer(client), nil)
	return newAppModel(context.Background(), Options{Orchestrator: orch, Model: "offline"})
}

func TestAppModel_ViewFrame(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	view := updated.(AppModel).render()

	for _, needle := range []string{"Lessonloop", "Content Studio", "offline", "Grade", "Topic", "Generate", "Ctrl+C"} {
		if !strings.Contains(view, needle) {
			t.Errorf("view missing %q", needle)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
