package core

// Action represents a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionPanUp           // Up arrow, k
	ActionPanDown         // Down arrow, j
	ActionPanLeft         // Left arrow, h
	ActionPanRight        // Right arrow, l
	ActionZoomIn          // +, =
	ActionZoomOut         // -
	ActionFit             // f - whole grid on screen
	ActionCenter          // c - centre on the ant
	ActionHelp            // ? - toggle full help
	ActionQuit            // q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionFit:
		return "Fit"
	case ActionCenter:
		return "Center"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
