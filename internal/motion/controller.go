// Package motion turns abstract catalog keys into physical avatar triggers.
//
// The controller owns the hotkey binding table and alias resolution. The
// decision engine never emits anything but a catalog key; everything needed
// to land that key on the streaming rig lives here.
package motion

import (
	"log/slog"
	"strings"

	"github.com/lingbai-i/YueLi/internal/metrics"
)

// KeyTapper sends keystrokes to the avatar host. Implementations wrap the
// platform input backend; tests substitute a recorder.
type KeyTapper interface {
	// Press sends a single key.
	Press(key string) error
	// Hotkey sends a chord, all keys held together.
	Hotkey(keys ...string) error
}

// Controller triggers avatar motions by simulated keyboard input.
type Controller struct {
	tapper KeyTapper
}

func NewController(tapper KeyTapper) *Controller {
	return &Controller{tapper: tapper}
}

// AvailableActions returns key → display-name for every bound motion.
func (c *Controller) AvailableActions() map[string]string {
	out := make(map[string]string, len(actions))
	for key, config := range actions {
		out[key] = config.Name
	}
	return out
}

// Trigger fires the motion bound to key. Unknown keys and tapper failures
// report false; callers decide whether that matters.
func (c *Controller) Trigger(key string) bool {
	config, ok := actions[key]
	if !ok {
		slog.Warn("unknown motion key", "key", key)
		metrics.MotionTriggersTotal.WithLabelValues("unknown").Inc()
		return false
	}

	slog.Info("triggering motion", "name", config.Name, "key", key, "keys", config.Keys)
	var err error
	if len(config.Keys) == 1 {
		err = c.tapper.Press(config.Keys[0])
	} else {
		err = c.tapper.Hotkey(config.Keys...)
	}
	if err != nil {
		slog.Error("motion trigger failed", "key", key, "error", err)
		metrics.MotionTriggersTotal.WithLabelValues("failed").Inc()
		return false
	}
	metrics.MotionTriggersTotal.WithLabelValues("ok").Inc()
	return true
}

// ResolveKey maps a requested motion name onto a bound key: exact key match
// first, then the alias table, then display-name match, then case-insensitive
// key match.
func (c *Controller) ResolveKey(requested string) (string, bool) {
	if _, ok := actions[requested]; ok {
		return requested, true
	}
	if target, ok := aliases[requested]; ok {
		return target, true
	}
	for key, config := range actions {
		if config.Name == requested {
			return key, true
		}
	}
	for key := range actions {
		if strings.EqualFold(key, requested) {
			return key, true
		}
	}
	return "", false
}
