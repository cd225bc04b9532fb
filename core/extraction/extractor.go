package extraction

import (
	"log/slog"

	"github.com/siherrmann/metamodel/core/graph"
	"github.com/siherrmann/metamodel/model"
)

// Extractor resolves the schema of a view by asking its sources in order.
// The first source that finds a definition is used, the others are ignored.
type Extractor struct {
	Sources []SourceFunc
	Config  model.Config
	trace   model.Tracer
}

// NewExtractor creates an extractor looking for a meta group first and a
// referenced meta view second
func NewExtractor(config model.Config, trace model.Tracer) *Extractor {
	return &Extractor{
		Sources: []SourceFunc{GroupSource, ReferenceSource},
		Config:  config,
		trace:   trace,
	}
}

// SetSources replaces the sources asked by the extractor
func (e *Extractor) SetSources(sources ...SourceFunc) {
	e.Sources = sources
}

// FindSource returns the first schema definition found on view
func (e *Extractor) FindSource(view *model.View) (*Source, bool) {
	if view == nil {
		return nil, false
	}
	for _, source := range e.Sources {
		if found, ok := source(view, e.Config); ok {
			return found, true
		}
	}
	return nil, false
}

// Extract builds the schema graph of view.
// It returns nil if the view defines no schema, which means everything is allowed.
func (e *Extractor) Extract(view *model.View) *graph.SchemaGraph {
	source, ok := e.FindSource(view)
	if !ok {
		e.trace.Trace("No schema found", slog.String("view", viewName(view)))
		return nil
	}

	debug := source.Debug || e.Config.Debug

	var trace model.Tracer
	if debug {
		trace = e.trace
	}
	trace.Trace("Found schema",
		slog.String("view", viewName(view)),
		slog.String("source", source.Kind.String()),
		slog.String("name", source.Name),
	)

	schema := graph.BuildSchemaGraphTraced(source.Entities, source.Relationships, trace)
	schema.Debug = debug

	return schema
}

// ExtractSchema builds the schema graph of view with the default sources.
// It returns nil if the view defines no schema.
func ExtractSchema(view *model.View, config model.Config) *graph.SchemaGraph {
	return NewExtractor(config, nil).Extract(view)
}

func viewName(view *model.View) string {
	if view == nil {
		return ""
	}
	return view.Name
}
