package cdp

import (
	"context"
	"testing"

	cdproto "github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sarf/internal/application/port"
	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/bnema/sarf/internal/infrastructure/engine"
)

type eventLog struct {
	sources    []string
	titles     []string
	fullscreen []bool
}

func (e *eventLog) SurfaceReady(entity.TabID, port.ContentSurface, error) {}
func (e *eventLog) SourceChanged(_ entity.TabID, url string)            { e.sources = append(e.sources, url) }
func (e *eventLog) TitleChanged(_ entity.TabID, title string)           { e.titles = append(e.titles, title) }
func (e *eventLog) FullscreenIntentChanged(_ entity.TabID, wants bool) {
	e.fullscreen = append(e.fullscreen, wants)
}

func newTestSurface() *Surface {
	ctx, cancel := context.WithCancel(context.Background())
	return &Surface{id: "tab-1", ctx: ctx, cancel: cancel, logCtx: context.Background()}
}

func TestSurface_HandleEvent_Navigation(t *testing.T) {
	s := newTestSurface()
	events := &eventLog{}

	s.handleEvent(&page.EventFrameNavigated{Frame: &cdproto.Frame{ID: "main", URL: "https://example.com/"}}, events)
	s.handleEvent(&page.EventFrameNavigated{Frame: &cdproto.Frame{ID: "ad", ParentID: "main", URL: "https://ads.example/"}}, events)
	s.handleEvent(&page.EventNavigatedWithinDocument{FrameID: "main", URL: "https://example.com/#top"}, events)
	s.handleEvent(&page.EventNavigatedWithinDocument{FrameID: "ad", URL: "https://ads.example/#x"}, events)
	s.handleEvent(&page.EventFrameNavigated{Frame: &cdproto.Frame{ID: "main", URL: "https://example.com/", URLFragment: "#top"}}, events)

	assert.Equal(t, []string{"https://example.com/", "https://example.com/#top"}, events.sources)
	assert.Equal(t, "https://example.com/#top", s.CurrentURL())
}

func TestSurface_HandleEvent_Bridge(t *testing.T) {
	s := newTestSurface()
	events := &eventLog{}

	s.handleEvent(&cdpruntime.EventBindingCalled{Name: engine.BindingName, Payload: `{"kind":"title","title":"Hello"}`}, events)
	s.handleEvent(&cdpruntime.EventBindingCalled{Name: engine.BindingName, Payload: `{"kind":"fullscreen","fullscreen":true}`}, events)
	s.handleEvent(&cdpruntime.EventBindingCalled{Name: "other", Payload: `{"kind":"title","title":"Nope"}`}, events)
	s.handleEvent(&cdpruntime.EventBindingCalled{Name: engine.BindingName, Payload: `{`}, events)

	assert.Equal(t, []string{"Hello"}, events.titles)
	assert.Equal(t, []bool{true}, events.fullscreen)
	assert.True(t, s.FullscreenRequested())
}

func TestSurface_ClosedRejectsWork(t *testing.T) {
	s := newTestSurface()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Navigate(context.Background(), "https://example.com/"), port.ErrSurfaceClosed)
	assert.ErrorIs(t, s.SetBounds(context.Background(), entity.Rect{W: 10, H: 10}), port.ErrSurfaceClosed)
	assert.ErrorIs(t, s.ExitFullscreen(context.Background()), port.ErrSurfaceClosed)
}

func TestFactory_CreateAfterClose(t *testing.T) {
	f := &Factory{closed: true}
	var (
		gotSurface port.ContentSurface
		gotErr     error
	)
	f.Create(context.Background(), "tab-9", readyFunc(func(_ entity.TabID, s port.ContentSurface, err error) {
		gotSurface, gotErr = s, err
	}))
	assert.Nil(t, gotSurface)
	assert.ErrorIs(t, gotErr, port.ErrSurfaceClosed)
	assert.Equal(t, Name, f.Name())
}

type readyFunc func(entity.TabID, port.ContentSurface, error)

func (f readyFunc) SurfaceReady(id entity.TabID, s port.ContentSurface, err error) { f(id, s, err) }
func (readyFunc) SourceChanged(entity.TabID, string)                                {}
func (readyFunc) TitleChanged(entity.TabID, string)                                 {}
func (readyFunc) FullscreenIntentChanged(entity.TabID, bool)                        {}
