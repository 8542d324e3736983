package generator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-swizgen/internal/logging"
	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/render/literal"
	"github.com/goliatone/go-swizgen/pkg/render/template/pongo"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

const defaultRendererName = literal.Name

// Phase names a stage of the generation pipeline reported to progress hooks.
type Phase string

const (
	PhaseEnumerate Phase = "enumerate"
	PhaseSort      Phase = "sort"
	PhaseRender    Phase = "render"
	PhaseDone      Phase = "done"
)

// ProgressFunc is called when the pipeline enters a new phase.
type ProgressFunc func(phase Phase)

// Option customises the generator configuration.
type Option func(*Generator)

// WithRegistry injects a renderer registry. The built-in engines are only
// registered when no registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// WithLogger sets the logger used for phase and timing diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithProgress registers a hook notified at each phase boundary.
func WithProgress(fn ProgressFunc) Option {
	return func(g *Generator) {
		g.progress = fn
	}
}

// Generator runs enumerate -> sort -> render for a request. A Generator holds
// no per-run state and may be reused.
type Generator struct {
	registry        *render.Registry
	defaultRenderer string
	logger          zerolog.Logger
	progress        ProgressFunc
	initialiseErr   error
}

// New constructs a Generator applying any provided options. Without a registry
// the literal and pongo2 engines are registered.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.registry != nil {
		return
	}
	g.registry = render.NewRegistry()
	if err := g.registry.Register(literal.New()); err != nil {
		g.initialiseErr = err
		return
	}
	engine, err := pongo.New()
	if err != nil {
		g.initialiseErr = fmt.Errorf("generator: init pongo2 engine: %w", err)
		return
	}
	if err := g.registry.Register(engine); err != nil {
		g.initialiseErr = err
	}
}

// Request describes one generation run.
type Request struct {
	// Symbols are the components to combine, in enumeration order.
	Symbols swizzle.Symbols

	// MaxLength bounds the sequence length. Values <= 0 produce no output.
	MaxLength int

	// Template is rendered once per sequence.
	Template string

	// Renderer names the engine to use. Empty selects the default renderer.
	Renderer string
}

// Renderers lists the registered engine names.
func (g *Generator) Renderers() []string {
	return g.registry.List()
}

// Sequences enumerates the request's sequences and sorts them shortest first.
func (g *Generator) Sequences(ctx context.Context, req Request) ([]swizzle.Sequence, error) {
	if err := g.check(ctx); err != nil {
		return nil, err
	}
	return g.sequences(ctx, req)
}

func (g *Generator) sequences(ctx context.Context, req Request) ([]swizzle.Sequence, error) {
	g.notify(PhaseEnumerate)
	done := logging.LogOperationStart(g.logger, string(PhaseEnumerate))
	seqs, err := swizzle.EnumerateContext(ctx, req.Symbols, req.MaxLength)
	if err != nil {
		return nil, fmt.Errorf("generator: enumerate: %w", err)
	}
	done()
	g.logger.Debug().
		Str("symbols", req.Symbols.String()).
		Int("max_length", req.MaxLength).
		Int("count", len(seqs)).
		Msg("Enumerated sequences")

	g.notify(PhaseSort)
	done = logging.LogOperationStart(g.logger, string(PhaseSort))
	swizzle.SortByLength(seqs)
	done()

	return seqs, nil
}

// Generate returns one rendered string per sequence, shortest sequences first.
func (g *Generator) Generate(ctx context.Context, req Request) ([]string, error) {
	var out []string
	_, err := g.run(ctx, req, func(text string) error {
		out = append(out, text)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Stream writes every rendered sequence to w followed by a line break and
// returns the number of lines written.
func (g *Generator) Stream(ctx context.Context, req Request, w io.Writer) (int, error) {
	if w == nil {
		return 0, errors.New("generator: writer is required")
	}
	buf := bufio.NewWriter(w)
	n, err := g.run(ctx, req, func(text string) error {
		if _, err := buf.WriteString(text); err != nil {
			return err
		}
		return buf.WriteByte('\n')
	})
	if err != nil {
		return n, err
	}
	if err := buf.Flush(); err != nil {
		return n, fmt.Errorf("generator: flush output: %w", err)
	}
	return n, nil
}

// Validate resolves the renderer and compiles the template without
// enumerating, so callers can fail before touching any output.
func (g *Generator) Validate(ctx context.Context, req Request) error {
	if err := g.check(ctx); err != nil {
		return err
	}
	_, err := g.compile(req)
	return err
}

func (g *Generator) run(ctx context.Context, req Request, emit func(string) error) (int, error) {
	if err := g.check(ctx); err != nil {
		return 0, err
	}

	tmpl, err := g.compile(req)
	if err != nil {
		return 0, err
	}

	seqs, err := g.sequences(ctx, req)
	if err != nil {
		return 0, err
	}

	g.notify(PhaseRender)
	done := logging.LogOperationStart(g.logger, string(PhaseRender))
	written := 0
	for _, seq := range seqs {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		text, err := tmpl.Execute(seq)
		if err != nil {
			return written, fmt.Errorf("generator: render %q: %w", seq.String(), err)
		}
		if err := emit(text); err != nil {
			return written, fmt.Errorf("generator: write output: %w", err)
		}
		written++
	}
	done()
	g.logger.Debug().Int("lines", written).Msg("Rendered sequences")

	g.notify(PhaseDone)
	return written, nil
}

func (g *Generator) compile(req Request) (render.Template, error) {
	name := req.Renderer
	if name == "" {
		name = g.defaultRenderer
	}
	renderer, err := g.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("generator: %w (available: %v)", err, g.registry.List())
	}
	tmpl, err := renderer.Compile(req.Template)
	if err != nil {
		return nil, fmt.Errorf("generator: compile template: %w", err)
	}
	g.logger.Debug().Str("renderer", name).Msg("Compiled template")
	return tmpl, nil
}

func (g *Generator) check(ctx context.Context) error {
	if ctx == nil {
		return errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.initialiseErr
}

func (g *Generator) notify(phase Phase) {
	if g.progress != nil {
		g.progress(phase)
	}
}
