package metamodel

import (
	"io"
	"log/slog"
	"os"

	"github.com/siherrmann/metamodel/core/containment"
	"github.com/siherrmann/metamodel/core/extraction"
	"github.com/siherrmann/metamodel/core/graph"
	"github.com/siherrmann/metamodel/core/legality"
	"github.com/siherrmann/metamodel/helper"
	"github.com/siherrmann/metamodel/model"
)

// Validator checks the relationships of a view against the schema the view defines
type Validator struct {
	View    *model.View
	Config  model.Config
	Schema  *graph.SchemaGraph // nil if the view defines no schema
	Checker *legality.Checker
	// Logging
	log *slog.Logger
}

// NewValidator extracts the schema of view and logs to stdout.
// A nil config uses model.DefaultConfig.
func NewValidator(view *model.View, config *model.Config) *Validator {
	return NewValidatorWithOutput(view, config, os.Stdout)
}

// NewValidatorWithOutput extracts the schema of view and logs to out
func NewValidatorWithOutput(view *model.View, config *model.Config, out io.Writer) *Validator {
	cfg := model.DefaultConfig()
	if config != nil {
		cfg = *config
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: cfg.LogLevel,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(out, opts))

	v := &Validator{
		View:   view,
		Config: cfg,
		log:    logger,
	}
	v.load()

	return v
}

// SetLogger replaces the logger and rebuilds the checker to trace through it
func (v *Validator) SetLogger(logger *slog.Logger) {
	v.log = logger
	v.Checker = legality.NewChecker(v.Schema, v.tracer())
}

func (v *Validator) load() {
	extractor := extraction.NewExtractor(v.Config, model.NewSlogTracer(v.log))
	v.Schema = extractor.Extract(v.View)
	v.Checker = legality.NewChecker(v.Schema, v.tracer())

	if v.Schema == nil {
		v.log.Info("No meta-model defined, all relationships are allowed", slog.String("view", viewName(v.View)))
		return
	}
	v.log.Info("Loaded meta-model",
		slog.String("view", viewName(v.View)),
		slog.Int("entities", len(v.Schema.Entities)),
		slog.Int("relationships", len(v.Schema.Relationships)),
		slog.Bool("debug", v.Schema.Debug),
	)
}

// tracer is only wired when the schema asks for debug output
func (v *Validator) tracer() model.Tracer {
	if v.Schema == nil || !v.Schema.Debug {
		return nil
	}
	return model.NewSlogTracer(v.log)
}

// HasSchema reports whether the view defines a meta-model
func (v *Validator) HasSchema() bool {
	return v.Schema != nil
}

// FindMatches returns the schema entities entity corresponds to
func (v *Validator) FindMatches(entity *model.Entity) []*model.Entity {
	return v.Checker.FindMatches(entity)
}

// IsAllowed reports whether relationship from source to target is allowed
func (v *Validator) IsAllowed(source *model.Entity, target *model.Entity, relationship *model.Relationship) bool {
	return v.Checker.IsAllowed(source, target, relationship)
}

// ValidateView checks every relationship drawn on the view, in view order.
// Relationships that belong to the meta-model itself are skipped.
func (v *Validator) ValidateView() model.ValidationResults {
	if v.View == nil {
		return nil
	}

	results := make(model.ValidationResults, 0, len(v.View.Relationships))
	for _, relationship := range v.View.Relationships {
		if v.Schema.ContainsRelationship(relationship.ID) {
			continue
		}
		results = append(results, model.ValidationResult{
			Relationship: relationship,
			Allowed:      v.Checker.IsAllowed(relationship.Source, relationship.Target, relationship),
		})
	}

	denied := results.Denied()
	for _, result := range denied {
		v.log.Warn("Relationship not allowed by meta-model",
			slog.String("relationship", result.Relationship.String()),
			slog.String("source", result.Relationship.Source.String()),
			slog.String("target", result.Relationship.Target.String()),
		)
	}
	v.log.Info("Validated view",
		slog.String("view", viewName(v.View)),
		slog.Int("checked", len(results)),
		slog.Int("denied", len(denied)),
	)

	return results
}

// Attractors returns the nodes nested in the view's attractor groups
func (v *Validator) Attractors() []*model.Node {
	var trace model.Tracer
	if v.Config.Debug {
		trace = model.NewSlogTracer(v.log)
	}
	return containment.Attractors(v.View, v.Config, trace)
}

// AttractorConcepts returns the concepts of the view's attractor nodes
func (v *Validator) AttractorConcepts() []*model.Entity {
	return containment.AttractorConcepts(v.Attractors())
}

func viewName(view *model.View) string {
	if view == nil {
		return ""
	}
	return view.Name
}
