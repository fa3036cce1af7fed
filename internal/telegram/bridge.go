package telegram

import "strings"

// BridgeCommand is an instruction for the host WebApp object, executed by the page script.
type BridgeCommand string

const (
	BridgeReady            BridgeCommand = "ready"
	BridgeExpand           BridgeCommand = "expand"
	BridgeShowMainButton   BridgeCommand = "MainButton.show"
	BridgeHideMainButton   BridgeCommand = "MainButton.hide"
	BridgeToggleMainButton BridgeCommand = "MainButton.toggle" // show when hidden, hide otherwise
	BridgeClose            BridgeCommand = "close"
)

// StartupCommands are issued once when the page mounts.
func StartupCommands() []BridgeCommand {
	return []BridgeCommand{BridgeReady, BridgeExpand}
}

// Attr renders commands as a space-separated attribute value.
func Attr(cmds ...BridgeCommand) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
