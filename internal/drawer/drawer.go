// Package drawer tracks the open/closed state of the slide-in panels
// (cart and menu). Pure UI state: no business data, no intermediate
// animating states — any animation is a visual side effect of the
// transition.
package drawer

// Panel identifies a slide-in panel and its backing overlay.
type Panel string

const (
	Cart Panel = "cart"
	Menu Panel = "menu"
)

// State is the panel's position. Closed is the initial state.
type State int

const (
	Closed State = iota
	Open
)

// Controller holds per-panel state. Opening a panel also implies the
// overlay is shown and background scroll is suppressed; closing
// reverses both.
type Controller struct {
	states map[Panel]State
}

func NewController() *Controller {
	return &Controller{states: map[Panel]State{}}
}

func (c *Controller) Open(p Panel)  { c.states[p] = Open }
func (c *Controller) Close(p Panel) { c.states[p] = Closed }

func (c *Controller) State(p Panel) State { return c.states[p] }
func (c *Controller) IsOpen(p Panel) bool { return c.states[p] == Open }

// ScrollLocked reports whether background scroll is suppressed, which
// is the case while any panel is open.
func (c *Controller) ScrollLocked() bool {
	for _, s := range c.states {
		if s == Open {
			return true
		}
	}
	return false
}

// ViewModel is what templates need to set the open classes on panels
// and overlays and the scroll lock on the body.
type ViewModel struct {
	CartOpen     bool
	MenuOpen     bool
	ScrollLocked bool
}

func (c *Controller) View() ViewModel {
	return ViewModel{
		CartOpen:     c.IsOpen(Cart),
		MenuOpen:     c.IsOpen(Menu),
		ScrollLocked: c.ScrollLocked(),
	}
}
