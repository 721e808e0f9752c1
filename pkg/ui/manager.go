// Package ui provides the widget manager: it owns the root widget, the
// style registry, fonts, images and the event queue, and it is the entry
// point for input coming from the platform layer.
//
// A typical embedding loads styles and a UI description, then forwards
// input and polls the queue once per frame:
//
//	m, err := ui.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer m.Terminate()
//	if _, err := m.LoadUIFile("main.yaml", nil); err != nil {
//	    return err
//	}
//	for frame := range frames {
//	    m.MouseMove(frame.Pointer)
//	    m.Poll()
//	    m.Render(canvas)
//	}
//
// Like the widget tree, the manager must only be used from the goroutine
// that polls its queue. Post is the exception.
package ui

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-drift/anchorui/pkg/assets"
	"github.com/go-drift/anchorui/pkg/config"
	"github.com/go-drift/anchorui/pkg/dispatch"
	"github.com/go-drift/anchorui/pkg/graphics"
	"github.com/go-drift/anchorui/pkg/render"
	"github.com/go-drift/anchorui/pkg/style"
	"github.com/go-drift/anchorui/pkg/widget"
)

// RootID is the id of the root widget.
const RootID = "root"

// Manager is the concrete widget manager.
type Manager struct {
	cfg *config.Config

	root    *widget.Base
	pointer graphics.Point

	queue    *dispatch.Queue
	ownQueue bool
	ids      widget.IDAllocator
	fonts    *assets.FontRegistry
	images   *assets.ImageCache

	styles    map[string]*style.Node
	defs      map[string]styleDef
	factories map[string]Factory
	instances []instance

	reg     prometheus.Registerer
	metrics *Metrics

	watchMu      sync.Mutex
	watchPending map[string]bool

	terminated bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRegisterer registers the manager's metrics with reg instead of a
// private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(m *Manager) { m.reg = reg }
}

// WithQueue makes the manager post deferred work to q. The caller keeps
// ownership of q.
func WithQueue(q *dispatch.Queue) Option {
	return func(m *Manager) { m.queue = q }
}

// WithIDAllocator overrides the id scheme selected in the configuration.
func WithIDAllocator(ids widget.IDAllocator) Option {
	return func(m *Manager) { m.ids = ids }
}

// New creates a manager with a root widget covering the configured screen
// and imports the configured style files. A nil cfg means the defaults.
func New(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m := &Manager{
		cfg:          cfg,
		styles:       make(map[string]*style.Node),
		defs:         make(map[string]styleDef),
		factories:    make(map[string]Factory),
		watchPending: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.queue == nil {
		m.queue = dispatch.NewQueue()
		m.ownQueue = true
	}
	if m.ids == nil {
		if cfg.IDs.Scheme == config.ULIDs {
			m.ids = widget.ULIDs{}
		} else {
			m.ids = &widget.SequentialIDs{}
		}
	}
	if m.reg == nil {
		m.reg = prometheus.NewRegistry()
	}
	m.metrics = newMetrics(m.reg, cfg.Metrics.Namespace)

	m.fonts = assets.NewFontRegistry()
	for name, path := range cfg.Fonts.Files {
		if err := m.fonts.LoadTTF(name, path, cfg.Fonts.Size); err != nil {
			return nil, err
		}
	}
	if cfg.Fonts.Default != "" {
		if err := m.fonts.SetDefault(cfg.Fonts.Default); err != nil {
			return nil, err
		}
	}
	m.images = assets.NewImageCache(cfg.Assets.Root)

	m.RegisterFactory("Label", func(wm widget.Manager) widget.Widget { return widget.NewLabel(wm) })

	m.root = widget.New(m)
	m.root.SetID(RootID)
	m.root.SetRect(cfg.ScreenRect())
	m.root.UpdateStates()

	for _, path := range cfg.Styles.Files {
		if err := m.LoadStyleFile(path); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Config returns the configuration the manager was created with.
func (m *Manager) Config() *config.Config { return m.cfg }

// Metrics returns the manager's collectors.
func (m *Manager) Metrics() *Metrics { return m.metrics }

// Registerer returns the registerer the metrics were registered with.
func (m *Manager) Registerer() prometheus.Registerer { return m.reg }

// Root returns the root widget, or nil after Terminate.
func (m *Manager) Root() *widget.Base { return m.root }

// RootWidget implements widget.Manager.
func (m *Manager) RootWidget() widget.Widget {
	if m.root == nil {
		return nil
	}
	return m.root
}

// PointerPosition returns the position of the last MouseMove.
func (m *Manager) PointerPosition() graphics.Point { return m.pointer }

// Post schedules fn on the next Poll. It is safe to call from any goroutine.
func (m *Manager) Post(fn func()) bool { return m.queue.Post(fn) }

func (m *Manager) NextID() string { return m.ids.NextID() }

func (m *Manager) Fonts() widget.FontSource   { return m.fonts }
func (m *Manager) Images() widget.ImageSource { return m.images }

// FontRegistry returns the registry for adding fonts at run time.
func (m *Manager) FontRegistry() *assets.FontRegistry { return m.fonts }

// ImageCache returns the shared image cache.
func (m *Manager) ImageCache() *assets.ImageCache { return m.images }

// Queue returns the event queue deferred callbacks are posted to.
func (m *Manager) Queue() *dispatch.Queue { return m.queue }

// Poll runs one turn of the event queue.
func (m *Manager) Poll() int {
	n := m.queue.Poll()
	m.metrics.QueuePending.Set(float64(m.queue.Pending()))
	return n
}

// Resize changes the screen size. The root relayouts immediately and the
// hover state follows the new geometry.
func (m *Manager) Resize(size graphics.Size) {
	if m.root == nil {
		return
	}
	m.root.Resize(size)
	m.root.UpdateState(widget.HoverState)
}

// Render draws the whole tree.
func (m *Manager) Render(p render.Painter) {
	if m.root == nil {
		return
	}
	m.root.Self().Render(p)
}

// Terminate destroys the tree and stops the queue if the manager created
// it. The manager is unusable afterwards.
func (m *Manager) Terminate() {
	if m.terminated {
		return
	}
	m.terminated = true
	m.root.Destroy()
	m.root = nil
	m.instances = nil
	if m.ownQueue {
		m.queue.Close()
	}
}
