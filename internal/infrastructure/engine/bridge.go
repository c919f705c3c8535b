package engine

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
)

// BindingName is the page-global function the bridge script reports through.
const BindingName = "__sarfShell"

// BridgeScript is injected into every document. It reports fullscreen and
// title changes as JSON strings through BindingName.
const BridgeScript = `(() => {
  if (window.__sarfShellInstalled) return;
  window.__sarfShellInstalled = true;
  const send = (msg) => {
    try { window.` + BindingName + `(JSON.stringify(msg)); } catch (e) {}
  };
  document.addEventListener('fullscreenchange', () => {
    send({kind: 'fullscreen', fullscreen: !!document.fullscreenElement});
  }, true);
  const watchTitle = () => {
    let last = document.title;
    if (last) send({kind: 'title', title: last});
    new MutationObserver(() => {
      if (document.title !== last) {
        last = document.title;
        send({kind: 'title', title: last});
      }
    }).observe(document.head || document.documentElement, {subtree: true, childList: true, characterData: true});
  };
  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', watchTitle);
  } else {
    watchTitle();
  }
})();`

// ExitFullscreenScript asks the page to leave fullscreen.
const ExitFullscreenScript = `void (document.fullscreenElement && document.exitFullscreen())`

// Payload kinds sent by BridgeScript.
const (
	PayloadFullscreen = "fullscreen"
	PayloadTitle      = "title"
)

// Payload is one bridge message.
type Payload struct {
	Kind       string `json:"kind"`
	Title      string `json:"title,omitempty"`
	Fullscreen bool   `json:"fullscreen,omitempty"`
}

// ParsePayload decodes a bridge message.
func ParsePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("decode bridge payload: %w", err)
	}
	switch p.Kind {
	case PayloadFullscreen, PayloadTitle:
		return p, nil
	default:
		return Payload{}, fmt.Errorf("unknown bridge payload kind %q", p.Kind)
	}
}

// Deliver forwards a bridge payload for tab id to events. Fullscreen
// payloads are only forwarded when they change state.
func Deliver(id entity.TabID, state *State, p Payload, events port.SurfaceEvents) {
	switch p.Kind {
	case PayloadFullscreen:
		if state.SetFullscreen(p.Fullscreen) {
			events.FullscreenIntentChanged(id, p.Fullscreen)
		}
	case PayloadTitle:
		if p.Title != "" {
			events.TitleChanged(id, p.Title)
		}
	}
}
