package hyprland

import "fmt"

// unknownParam fills the description when a recognized dispatcher gets a
// parameter its rule has no phrasing for.
const unknownParam = "null"

// rule produces a description from a dispatcher's parameter string.
type rule interface {
	describe(params string) string
}

// text ignores the parameters.
type text string

func (t text) describe(string) string { return string(t) }

// withParams substitutes the parameters verbatim.
type withParams string

func (f withParams) describe(params string) string {
	return fmt.Sprintf(string(f), params)
}

// choice substitutes the phrase mapped from the parameters.
type choice struct {
	values map[string]string
	format string
}

func (c choice) describe(params string) string {
	v, ok := c.values[params]
	if !ok {
		v = unknownParam
	}

	return fmt.Sprintf(c.format, v)
}

// relative gives "+1" and "-1" their own phrasing.
type relative struct {
	rule

	next string
	prev string
}

func (r relative) describe(params string) string {
	switch params {
	case "+1":
		return r.next
	case "-1":
		return r.prev
	}

	return r.rule.describe(params)
}

// bare gives an empty parameter string its own phrasing.
type bare struct {
	rule

	empty string
}

func (b bare) describe(params string) string {
	if params == "" {
		return b.empty
	}

	return b.rule.describe(params)
}

var directions = map[string]string{
	"l": "left",
	"r": "right",
	"u": "up",
	"d": "down",
}

var fullscreenModes = map[string]string{
	"0": "fullscreen",
	"1": "maximization",
	"2": "fullscreen on Hyprland's side",
}

var rules = map[string]rule{
	"exec":           withParams("Execute: %s"),
	"killactive":     text("Close window"),
	"pin":            text("Window: pin (show on all workspaces)"),
	"togglefloating": text("Float/unfloat window"),
	"fullscreen":     choice{format: "Toggle %s", values: fullscreenModes},
	"fakefullscreen": text("Toggle fake fullscreen"),

	"resizewindow": text("Resize window"),
	"resizeactive": withParams("Resize window by %s"),
	"splitratio":   withParams("Window split ratio %s"),

	"movefocus":  choice{format: "Window: move focus %s", values: directions},
	"swapwindow": choice{format: "Window: swap in %s direction", values: directions},
	"movewindow": bare{
		empty: "Move window",
		rule:  choice{format: "Window: move in %s direction", values: directions},
	},

	"workspace": relative{
		next: "Workspace: focus right",
		prev: "Workspace: focus left",
		rule: withParams("Focus workspace %s"),
	},
	"movetoworkspace": relative{
		next: "Window: move to right workspace (non-silent)",
		prev: "Window: move to left workspace (non-silent)",
		rule: withParams("Window: move to workspace %s (non-silent)"),
	},
	"movetoworkspacesilent": relative{
		next: "Window: move to right workspace",
		prev: "Window: move to left workspace",
		rule: withParams("Window: move to workspace %s"),
	},
	"togglespecialworkspace": text("Workspace: toggle special"),
}

// Describe returns a human-readable description of dispatcher invoked with
// params, or "" if dispatcher is not recognized.
func Describe(dispatcher, params string) string {
	r, ok := rules[dispatcher]
	if !ok {
		return ""
	}

	return r.describe(params)
}
