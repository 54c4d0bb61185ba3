package motion

import (
	"log/slog"
	"strings"
)

// LogTapper records keystrokes to the log instead of sending them to an
// input backend. It is the default when the process runs detached from
// the streaming rig; a real backend plugs in through the KeyTapper
// interface.
type LogTapper struct {
	Logger *slog.Logger
}

func (t LogTapper) Press(key string) error {
	t.logger().Info("key press", "key", key)
	return nil
}

func (t LogTapper) Hotkey(keys ...string) error {
	t.logger().Info("key chord", "keys", strings.Join(keys, "+"))
	return nil
}

func (t LogTapper) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}
