package portal

import (
	"github.com/godbus/dbus/v5"
)

const (
	permissionStoreName  = "org.freedesktop.impl.portal.PermissionStore"
	permissionStorePath  = "/org/freedesktop/impl/portal/PermissionStore"
	permissionStoreIface = "org.freedesktop.impl.portal.PermissionStore"

	desktopName      = "org.freedesktop.portal.Desktop"
	desktopPath      = "/org/freedesktop/portal/desktop"
	screenshotMethod = "org.freedesktop.portal.Screenshot.Screenshot"
)

// DBusClient defines the interface for the D-Bus calls the permission gate makes.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/snowcap/internal/portal DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// NameHasOwner reports whether a well-known name is currently owned
	NameHasOwner(name string) (bool, error)

	// LookupPermission reads one entry of the portal permission store
	// Returns a map from application id to the granted values
	LookupPermission(table, id string) (map[string][]string, error)

	// Screenshot calls the desktop portal Screenshot method
	// Returns the request object path; the answer arrives later as a signal
	Screenshot(parentWindow string, options map[string]dbus.Variant) (dbus.ObjectPath, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// NameHasOwner reports whether a well-known name is currently owned
func (c *StdDBusClient) NameHasOwner(name string) (bool, error) {
	var owned bool
	err := c.conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, name).Store(&owned)
	return owned, err
}

// LookupPermission reads one entry of the portal permission store
func (c *StdDBusClient) LookupPermission(table, id string) (map[string][]string, error) {
	var (
		perms map[string][]string
		data  dbus.Variant
	)
	obj := c.conn.Object(permissionStoreName, dbus.ObjectPath(permissionStorePath))
	err := obj.Call(permissionStoreIface+".Lookup", 0, table, id).Store(&perms, &data)
	return perms, err
}

// Screenshot calls the desktop portal Screenshot method
func (c *StdDBusClient) Screenshot(parentWindow string, options map[string]dbus.Variant) (dbus.ObjectPath, error) {
	var handle dbus.ObjectPath
	obj := c.conn.Object(desktopName, dbus.ObjectPath(desktopPath))
	err := obj.Call(screenshotMethod, 0, parentWindow, options).Store(&handle)
	return handle, err
}
