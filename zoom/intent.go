package zoom

// Intent is one discrete request from the user.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentZoomIn
	IntentZoomOut
	IntentPanLeft
	IntentPanRight
	IntentPanUp
	IntentPanDown
	IntentReset
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentZoomIn:
		return "zoom-in"
	case IntentZoomOut:
		return "zoom-out"
	case IntentPanLeft:
		return "pan-left"
	case IntentPanRight:
		return "pan-right"
	case IntentPanUp:
		return "pan-up"
	case IntentPanDown:
		return "pan-down"
	case IntentReset:
		return "reset"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// IntentForRune maps a typed key to its intent.
func IntentForRune(r rune) (Intent, bool) {
	switch r {
	case '[':
		return IntentZoomIn, true
	case ']':
		return IntentZoomOut, true
	case 'a':
		return IntentPanLeft, true
	case 'd':
		return IntentPanRight, true
	case 'w':
		return IntentPanUp, true
	case 's':
		return IntentPanDown, true
	case 'p':
		return IntentReset, true
	case 'q':
		return IntentQuit, true
	}
	return IntentNone, false
}

// Apply performs one intent. Pans take effect immediately; zoom intents only
// change direction and speed, the view moves on the next Tick.
func (c *Controller) Apply(in Intent) {
	switch in {
	case IntentZoomIn:
		c.ZoomIn()
	case IntentZoomOut:
		c.ZoomOut()
	case IntentPanLeft:
		c.PanLeft()
	case IntentPanRight:
		c.PanRight()
	case IntentPanUp:
		c.PanUp()
	case IntentPanDown:
		c.PanDown()
	case IntentReset:
		c.ResetView()
	case IntentQuit:
		c.Quit()
	}
}
