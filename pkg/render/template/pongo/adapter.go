// Package pongo adapts github.com/flosch/pongo2 to the swizzle generator so
// templates can use Django-style syntax:
//
//	public {{ elem }} => new Vector{{ length }}({{ params }});
//	{{ components|join:"_"|lower }}
//
// Every template sees elem, length, params and components. The `\n` escape is
// resolved in the template source before parsing, never in rendered values.
// HTML auto-escaping is off.
package pongo

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-swizgen/pkg/render"
	"github.com/goliatone/go-swizgen/pkg/swizzle"
)

// Name identifies the engine in a render.Registry.
const Name = "pongo2"

// noTemplates backs the loader when no include directory is configured.
var noTemplates embed.FS

// Option configures the engine before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	globalData map[string]any
	filters    map[string]func(input any, param any) (any, error)
}

// WithFS makes templates in fsys available to {% include %} and
// {% import %} tags.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithGlobalData seeds global context values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// WithFilter registers a custom filter when the engine is built.
func WithFilter(name string, fn func(input any, param any) (any, error)) Option {
	return func(cfg *config) {
		if cfg.filters == nil {
			cfg.filters = make(map[string]func(input any, param any) (any, error))
		}
		cfg.filters[strings.TrimSpace(name)] = fn
	}
}

// Engine is a render.Renderer backed by a pongo2 template set.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
}

var _ render.Renderer = (*Engine)(nil)

// New constructs an Engine using the provided configuration options.
func New(options ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	files := cfg.templates
	if files == nil {
		files = noTemplates
	}

	engine := &Engine{
		templateSet: pongo2.NewSet("swizgen", pongo2.NewFSLoader(files)),
	}
	registerDefaultFilters()

	if err := engine.GlobalContext(cfg.globalData); err != nil {
		return nil, fmt.Errorf("pongo2: apply global data: %w", err)
	}
	for name, fn := range cfg.filters {
		if err := engine.RegisterFilter(name, fn); err != nil {
			return nil, err
		}
	}

	return engine, nil
}

// Name reports the engine identifier.
func (e *Engine) Name() string {
	return Name
}

// Compile parses template once for reuse across sequences.
func (e *Engine) Compile(source string) (render.Template, error) {
	tmpl, err := e.parse(source)
	if err != nil {
		return nil, err
	}
	return &compiled{engine: e, tmpl: tmpl}, nil
}

type compiled struct {
	engine *Engine
	tmpl   *pongo2.Template
}

func (c *compiled) Execute(seq swizzle.Sequence) (string, error) {
	c.engine.mu.RLock()
	out, err := c.tmpl.Execute(pongo2.Context(render.NewVars(seq).Map()))
	c.engine.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("pongo2: execute template for %q: %w", seq.String(), err)
	}
	return out, nil
}

// RegisterFilter registers a template filter. pongo2 filters are global, so a
// name that already exists is rejected.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	if strings.TrimSpace(name) == "" || fn == nil {
		return errors.New("pongo2: filter name and function required")
	}

	filter := func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var paramVal any
		if param != nil {
			paramVal = param.Interface()
		}
		result, err := fn(in.Interface(), paramVal)
		if err != nil {
			return nil, &pongo2.Error{Sender: "custom_filter", OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}

	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo2: filter %q already exists", name)
	}
	return pongo2.RegisterFilter(name, filter)
}

// GlobalContext merges data into the values every template can read.
func (e *Engine) GlobalContext(data any) error {
	if e == nil || e.templateSet == nil {
		return errors.New("pongo2: engine is nil")
	}
	if data == nil {
		return nil
	}

	globalCtx, err := convertToContext(data)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templateSet.Globals == nil {
		e.templateSet.Globals = make(pongo2.Context)
	}
	e.templateSet.Globals.Update(globalCtx)
	return nil
}

func (e *Engine) parse(source string) (*pongo2.Template, error) {
	if e == nil || e.templateSet == nil {
		return nil, errors.New("pongo2: engine is nil")
	}
	wrapped := autoescapeOpen + render.ResolveEscapes(source) + autoescapeClose

	e.mu.Lock()
	defer e.mu.Unlock()

	tmpl, err := e.templateSet.FromString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: pongo2: %v", render.ErrCompile, unwrapPosition(err))
	}
	return tmpl, nil
}

const (
	autoescapeOpen  = "{% autoescape off %}"
	autoescapeClose = "{% endautoescape %}"
)

// unwrapPosition maps error columns on the first line back onto the user's
// template by removing the autoescape prefix.
func unwrapPosition(err error) error {
	var perr *pongo2.Error
	if !errors.As(err, &perr) || perr.Line != 1 {
		return err
	}
	if perr.Column > len(autoescapeOpen) {
		perr.Column -= len(autoescapeOpen)
	}
	return perr
}

func convertToContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	case render.Vars:
		return pongo2.Context(v.Map()), nil
	default:
		return nil, fmt.Errorf("pongo2: unsupported context type %T", data)
	}
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("lowerfirst") {
		_ = pongo2.RegisterFilter("lowerfirst", filterLowerFirst)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterLowerFirst lowercases the first non-space rune, turning an accessor
// like "XY" into "xY" for camel-cased member names.
func filterLowerFirst(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	t := in.String()

	for i, r := range t {
		if strings.ContainsRune(" \t\n\r", r) {
			continue
		}
		size := utf8.RuneLen(r)
		return pongo2.AsValue(t[:i] + strings.ToLower(string(r)) + t[i+size:]), nil
	}
	return pongo2.AsValue(t), nil
}
