// Package portal decides whether screen capture is allowed by asking the
// xdg-desktop-portal permission store over D-Bus.
package portal

import (
	"os"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	screenshotTable = "screenshot"
	screenshotID    = "screenshot"
	grantedValue    = "yes"
)

// Permission modes understood by UsePortal
const (
	ModeAuto   = "auto"
	ModePortal = "portal"
	ModeNone   = "none"
)

// Gate checks and requests screen capture permission through the desktop portal
type Gate struct {
	logger *zap.Logger
	client DBusClient
	appID  string
}

// NewGate creates a portal gate. appID is the key used in the permission store;
// unsandboxed applications are stored under the empty id.
func NewGate(logger *zap.Logger, client DBusClient, appID string) *Gate {
	return &Gate{logger: logger, client: client, appID: appID}
}

// Available reports whether a desktop portal is running on the session bus
func (g *Gate) Available() bool {
	owned, err := g.client.NameHasOwner(desktopName)
	if err != nil {
		g.logger.Debug("Failed to look up desktop portal", zap.Error(err))
		return false
	}
	return owned
}

// Granted reports whether the permission store holds a "yes" for the app.
// Lookup failures, including a missing entry, count as not granted.
func (g *Gate) Granted() bool {
	perms, err := g.client.LookupPermission(screenshotTable, screenshotID)
	if err != nil {
		g.logger.Debug("Permission store lookup failed", zap.Error(err))
		return false
	}

	for _, v := range perms[g.appID] {
		if v == grantedValue {
			return true
		}
	}
	return false
}

// Request fires a non-interactive portal screenshot so the desktop records a
// decision for the app. It does not wait for the user's answer.
func (g *Gate) Request() bool {
	token := "snowcap_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	handle, err := g.client.Screenshot("", map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
		"interactive":  dbus.MakeVariant(false),
		"modal":        dbus.MakeVariant(false),
	})
	if err != nil {
		g.logger.Warn("Failed to request screenshot permission", zap.Error(err))
		return false
	}

	g.logger.Info("Screenshot permission requested",
		zap.String("request", string(handle)),
		zap.String("appID", g.appID))
	return true
}

// Unrestricted is a gate for desktops without a permission model
type Unrestricted struct{}

// Granted always returns true
func (Unrestricted) Granted() bool { return true }

// Request always returns true
func (Unrestricted) Request() bool { return true }

// UsePortal resolves a permission mode to whether the portal gate applies.
// "auto" picks the portal on Wayland sessions, where X clients cannot see the screen.
func UsePortal(mode string) bool {
	switch mode {
	case ModePortal:
		return true
	case ModeNone:
		return false
	default:
		return os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("XDG_SESSION_TYPE") == "wayland"
	}
}
