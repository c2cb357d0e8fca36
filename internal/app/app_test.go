package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curato/internal/cachemanager"
	"curato/internal/config"
	"curato/internal/content"
	"curato/internal/mode"
	"curato/internal/mode/manage"
	"curato/internal/pubsub"
	"curato/internal/registry"
	"curato/internal/selection"
	"curato/internal/testutil"
	"curato/internal/ui/forms"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func newTestServices(t *testing.T) mode.Services {
	t.Helper()
	s := testutil.OpenStore(t)
	ctx := context.Background()
	deps := forms.Deps{Store: s, Ctx: ctx}

	reg := registry.New()
	require.NoError(t, reg.Register(
		registry.Descriptor{ID: content.TypeCategory, Label: content.Labels[content.TypeCategory]},
		func() registry.Form { return forms.NewCategoryForm(deps) },
	))
	require.NoError(t, reg.Register(
		registry.Descriptor{ID: content.TypeModule, Label: content.Labels[content.TypeModule]},
		func() registry.Form { return forms.NewModuleForm(deps) },
	))

	cache := cachemanager.NewInMemoryCacheManager[string, []content.Record]("record-list", time.Minute, time.Minute)
	listCache := cachemanager.NewReadThroughCache(
		cache,
		func(ctx context.Context, typeID string) ([]content.Record, error) {
			return s.List(ctx, typeID)
		},
		false,
	)

	cfg := config.Defaults()
	cfg.AutoRefresh = false // No watcher in tests

	return mode.Services{
		Store:     s,
		Registry:  reg,
		ListCache: listCache,
		Config:    &cfg,
		Ctx:       ctx,
	}
}

func newTestApp(t *testing.T) (Model, *selection.Controller) {
	t.Helper()
	services := newTestServices(t)
	sel := selection.NewController(services.Registry)
	m, err := New(services, sel)
	require.NoError(t, err)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return newModel.(Model), sel
}

func TestDefaultModeIsCreate(t *testing.T) {
	m, _ := newTestApp(t)
	assert.Equal(t, selection.ModeCreate, m.Mode())
}

func TestWindowSizeIsStored(t *testing.T) {
	m, _ := newTestApp(t)

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 150, Height: 60})
	m = newModel.(Model)

	assert.Equal(t, 150, m.width)
	assert.Equal(t, 60, m.height)
}

func TestCtrlSpaceTogglesMode(t *testing.T) {
	m, _ := newTestApp(t)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	m = newModel.(Model)
	assert.Equal(t, selection.ModeManage, m.Mode())

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	m = newModel.(Model)
	assert.Equal(t, selection.ModeCreate, m.Mode())
}

func TestModeSwitchPreservesActiveType(t *testing.T) {
	m, sel := newTestApp(t)
	require.NoError(t, sel.SelectType(content.TypeModule))

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	m = newModel.(Model)

	assert.Equal(t, content.TypeModule, sel.ActiveTypeID())
}

func TestViewShowsCreateModeByDefault(t *testing.T) {
	m, _ := newTestApp(t)
	view := m.View()

	assert.Contains(t, view, "Category")
	assert.Contains(t, view, "Module")
	assert.Contains(t, view, "create")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlainQDoesNotQuitCreateMode(t *testing.T) {
	m, _ := newTestApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
}

func TestPlainQQuitsManageMode(t *testing.T) {
	m, sel := newTestApp(t)
	sel.SelectMode(selection.ModeManage)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSavedMsgShowsToast(t *testing.T) {
	m, _ := newTestApp(t)
	rec := content.NewRecord(content.TypeCategory, "Mathematics", nil)

	newModel, cmd := m.Update(forms.SavedMsg{Record: rec})
	m = newModel.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.View(), "Mathematics")
}

func TestDeleteFailedMsgShowsErrorToast(t *testing.T) {
	m, _ := newTestApp(t)

	newModel, _ := m.Update(manage.DeleteFailedMsg{Err: errors.New("locked")})
	m = newModel.(Model)

	assert.True(t, m.toaster.Visible())
	assert.Contains(t, m.View(), "Delete failed")
}

func TestRecordEventRefreshesManageMode(t *testing.T) {
	m, sel := newTestApp(t)
	sel.SelectMode(selection.ModeManage)

	rec := content.NewRecord(content.TypeCategory, "Late Arrival", nil)
	require.NoError(t, m.services.Store.Save(m.services.Ctx, rec))

	newModel, cmd := m.Update(pubsub.Event[content.Record]{Kind: pubsub.KindCreated, Payload: rec})
	m = newModel.(Model)
	require.NotNil(t, cmd, "record events keep the listener alive and reload manage mode")
}

func TestHelpOverlayInManageMode(t *testing.T) {
	m, _ := newTestApp(t)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlAt})
	m = newModel.(Model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	assert.Contains(t, m.View(), "Manage Mode Keybindings")

	// Keys other than close are swallowed while help is up.
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = newModel.(Model)
	assert.Contains(t, m.View(), "Manage Mode Keybindings")

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)
	assert.NotContains(t, m.View(), "Manage Mode Keybindings")
}

func TestHelpOverlayViaF1InCreateMode(t *testing.T) {
	m, _ := newTestApp(t)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = newModel.(Model)
	assert.Contains(t, m.View(), "Create Mode Keybindings")

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)
	assert.NotContains(t, m.View(), "Create Mode Keybindings")
}

func TestQuestionMarkTypesIntoCreateForm(t *testing.T) {
	m, _ := newTestApp(t)
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = newModel.(Model)

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = newModel.(Model)

	assert.NotContains(t, m.View(), "Keybindings")
}

func TestStatusBarToggleInManageMode(t *testing.T) {
	m, sel := newTestApp(t)
	sel.SelectMode(selection.ModeManage)
	require.True(t, m.showStatusBar)

	newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = newModel.(Model)
	assert.False(t, m.showStatusBar)
}

func TestProgramRunsAndQuits(t *testing.T) {
	m, _ := newTestApp(t)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Category"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
