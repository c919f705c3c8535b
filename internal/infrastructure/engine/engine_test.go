package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/application/port/mocks"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/infrastructure/engine"
)

func TestRegistry_Open(t *testing.T) {
	factory := mocks.NewMockSurfaceFactory(t)
	var got engine.Options
	reg := engine.Registry{
		"chromedp": func(_ context.Context, opts engine.Options) (port.SurfaceFactory, error) {
			got = opts
			return factory, nil
		},
		"playwright": func(context.Context, engine.Options) (port.SurfaceFactory, error) {
			return nil, errors.New("driver missing")
		},
	}

	t.Run("known engine", func(t *testing.T) {
		f, err := reg.Open(context.Background(), "ChromeDP", engine.Options{Headless: true})
		require.NoError(t, err)
		assert.Same(t, factory, f)
		assert.True(t, got.Headless)
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := reg.Open(context.Background(), "webkit", engine.Options{})
		require.ErrorIs(t, err, engine.ErrUnknownEngine)
		assert.Contains(t, err.Error(), "chromedp, playwright")
	})

	t.Run("constructor error is wrapped", func(t *testing.T) {
		_, err := reg.Open(context.Background(), "playwright", engine.Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start playwright engine")
		assert.Contains(t, err.Error(), "driver missing")
	})
}

func TestOptions_ViewportOrDefault(t *testing.T) {
	assert.Equal(t, engine.DefaultViewport, engine.Options{}.ViewportOrDefault())
	vp := entity.Size{Width: 800, Height: 600}
	assert.Equal(t, vp, engine.Options{Viewport: vp}.ViewportOrDefault())
}

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    engine.Payload
		wantErr bool
	}{
		{name: "fullscreen", raw: `{"kind":"fullscreen","fullscreen":true}`, want: engine.Payload{Kind: "fullscreen", Fullscreen: true}},
		{name: "title", raw: `{"kind":"title","title":"Example"}`, want: engine.Payload{Kind: "title", Title: "Example"}},
		{name: "unknown kind", raw: `{"kind":"scroll"}`, wantErr: true},
		{name: "garbage", raw: `not json`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParsePayload(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type recordedEvents struct {
	titles     []string
	fullscreen []bool
}

func (r *recordedEvents) SurfaceReady(entity.TabID, port.ContentSurface, error) {}
func (r *recordedEvents) SourceChanged(entity.TabID, string)                    {}
func (r *recordedEvents) TitleChanged(_ entity.TabID, title string) {
	r.titles = append(r.titles, title)
}
func (r *recordedEvents) FullscreenIntentChanged(_ entity.TabID, wants bool) {
	r.fullscreen = append(r.fullscreen, wants)
}

func TestDeliver(t *testing.T) {
	var state engine.State
	events := &recordedEvents{}

	engine.Deliver("tab-1", &state, engine.Payload{Kind: engine.PayloadFullscreen, Fullscreen: true}, events)
	engine.Deliver("tab-1", &state, engine.Payload{Kind: engine.PayloadFullscreen, Fullscreen: true}, events)
	engine.Deliver("tab-1", &state, engine.Payload{Kind: engine.PayloadFullscreen}, events)
	engine.Deliver("tab-1", &state, engine.Payload{Kind: engine.PayloadTitle, Title: ""}, events)
	engine.Deliver("tab-1", &state, engine.Payload{Kind: engine.PayloadTitle, Title: "Docs"}, events)

	assert.Equal(t, []bool{true, false}, events.fullscreen)
	assert.Equal(t, []string{"Docs"}, events.titles)
	assert.False(t, state.Fullscreen())
}

func TestState(t *testing.T) {
	var s engine.State

	assert.True(t, s.SetURL("https://example.com/"))
	assert.False(t, s.SetURL("https://example.com/"))
	assert.Equal(t, "https://example.com/", s.URL())

	assert.False(t, s.IsMainFrame(""))
	s.SetMainFrame("F1")
	assert.True(t, s.IsMainFrame("F1"))
	assert.False(t, s.IsMainFrame("F2"))

	assert.True(t, s.SetVisible(true))
	assert.False(t, s.SetVisible(true))
	assert.True(t, s.Visible())

	r := entity.Rect{X: 1, Y: 2, W: 3, H: 4}
	assert.True(t, s.SetBounds(r))
	assert.False(t, s.SetBounds(r))
	assert.Equal(t, r, s.Bounds())

	assert.True(t, s.MarkClosed())
	assert.False(t, s.MarkClosed())
	assert.True(t, s.Closed())
}

func TestBridgeScript_UsesBinding(t *testing.T) {
	assert.Contains(t, engine.BridgeScript, "window."+engine.BindingName+"(")
	assert.Contains(t, engine.BridgeScript, "fullscreenchange")
	assert.Contains(t, engine.BridgeScript, "MutationObserver")
}
