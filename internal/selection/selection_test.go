package selection

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"curato/internal/registry"
)

type nopForm struct{}

func (f nopForm) Init() tea.Cmd                           { return nil }
func (f nopForm) Update(tea.Msg) (registry.Form, tea.Cmd) { return f, nil }
func (f nopForm) View() string                            { return "" }
func (f nopForm) SetSize(width, height int) registry.Form { return f }

func testRegistry(t testing.TB) *registry.Registry {
	t.Helper()
	reg := registry.New()
	for _, d := range []registry.Descriptor{
		{ID: "category", Label: "Category"},
		{ID: "module", Label: "Module"},
		{ID: "video", Label: "Video"},
		{ID: "article", Label: "Article"},
	} {
		if err := reg.Register(d, func() registry.Form { return nopForm{} }); err != nil {
			t.Fatalf("registering %s: %v", d.ID, err)
		}
	}
	return reg
}

func TestController_DefaultsToFirstRegisteredType(t *testing.T) {
	c := NewController(testRegistry(t))

	require.Equal(t, Selection{Mode: ModeCreate, ActiveTypeID: "category"}, c.Selection())
}

func TestController_ExplicitDefault(t *testing.T) {
	reg := testRegistry(t)

	c := NewControllerWithDefault(reg, "video")
	require.Equal(t, "video", c.ActiveTypeID())

	// Unregistered default falls back to the first registered type
	c = NewControllerWithDefault(reg, "bogus")
	require.Equal(t, "category", c.ActiveTypeID())
}

func TestController_SelectType(t *testing.T) {
	c := NewController(testRegistry(t))

	require.NoError(t, c.SelectType("video"))
	require.Equal(t, Selection{Mode: ModeCreate, ActiveTypeID: "video"}, c.Selection())

	// Unknown type fails and leaves the selection untouched
	err := c.SelectType("unknown")
	require.ErrorIs(t, err, registry.ErrUnknownType)
	require.Equal(t, Selection{Mode: ModeCreate, ActiveTypeID: "video"}, c.Selection())
}

func TestController_SelectTypeDoesNotSwitchMode(t *testing.T) {
	c := NewController(testRegistry(t))

	c.SelectMode(ModeManage)
	require.NoError(t, c.SelectType("article"))
	require.Equal(t, ModeManage, c.Mode(), "SelectType must not change mode")
}

func TestController_SelectModeIdempotent(t *testing.T) {
	c := NewController(testRegistry(t))
	require.NoError(t, c.SelectType("module"))

	c.SelectMode(ModeManage)
	after := c.Selection()
	c.SelectMode(ModeManage)
	require.Equal(t, after, c.Selection())

	c.SelectMode(ModeCreate)
	after = c.Selection()
	c.SelectMode(ModeCreate)
	require.Equal(t, after, c.Selection())
}

func TestController_ManageRoundTripRestoresType(t *testing.T) {
	c := NewController(testRegistry(t))
	require.NoError(t, c.SelectType("video"))

	c.SelectMode(ModeManage)
	c.SelectMode(ModeCreate)

	require.Equal(t, Selection{Mode: ModeCreate, ActiveTypeID: "video"}, c.Selection())
}

// Fuzzes call sequences against a fixed registry: whatever the sequence,
// the active type id must remain a registered id.
func TestController_PropertyBased_ActiveTypeAlwaysRegistered(t *testing.T) {
	ids := []string{"category", "module", "video", "article"}

	rapid.Check(t, func(t *rapid.T) {
		reg := registry.New()
		for _, id := range ids {
			if err := reg.Register(registry.Descriptor{ID: id, Label: id}, func() registry.Form { return nopForm{} }); err != nil {
				t.Fatalf("registering %s: %v", id, err)
			}
		}
		c := NewController(reg)

		numOps := rapid.IntRange(1, 200).Draw(t, "numOps")
		for i := 0; i < numOps; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				c.SelectMode(Mode(rapid.IntRange(0, 1).Draw(t, "mode")))
			case 1:
				_ = c.SelectType(rapid.SampledFrom(ids).Draw(t, "id"))
			case 2:
				_ = c.SelectType(rapid.StringMatching(`[A-Z]{1,8}`).Draw(t, "badID"))
			}

			if !reg.Contains(c.ActiveTypeID()) {
				t.Fatalf("active type %q is not registered", c.ActiveTypeID())
			}
		}
	})
}
