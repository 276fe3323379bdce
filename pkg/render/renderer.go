package render

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/media"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

// PlaceholderNoContent is returned when nothing renderable was found in the
// input, including the fully unrecoverable malformed case.
const PlaceholderNoContent = `<span class="dictmark-empty"></span>`

// errorClass wraps the human-readable reason of an unexpected failure.
const errorClass = "dictmark-error"

const (
	defaultTracerName  = "dictmark"
	defaultMediaPrefix = "/media/"
)

// Config configures a Renderer.
type Config struct {
	// Media rewrites relative illustration references. Defaults to a
	// passthrough resolver under "/media/".
	Media media.Resolver

	// DefaultLanguage is the inherited language filter at the root. Empty or
	// "*" disables localized-form filtering until a rule forces a language.
	DefaultLanguage string

	// Metrics receives render instrumentation when set.
	Metrics *Metrics

	// TracerName names the OpenTelemetry tracer (default: "dictmark").
	TracerName string
}

// Renderer converts raw entry documents to markup according to a display
// profile. A Renderer holds no per-call state and is safe for concurrent
// use; each Render call owns its own context.
type Renderer struct {
	config  Config
	extract extractor
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config Config) *Renderer {
	if config.Media == nil {
		config.Media = media.NewPassthroughResolver(defaultMediaPrefix)
	}
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	return &Renderer{
		config:  config,
		extract: extractor{media: config.Media},
		logger:  slog.Default().With("component", "render"),
		tracer:  otel.Tracer(config.TracerName),
	}
}

// Logger returns the renderer's logger.
func (r *Renderer) Logger() *slog.Logger {
	return r.logger
}

// SetLogger replaces the renderer's logger.
func (r *Renderer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Render converts one raw entry document to markup under the given profile.
// sharedCategory is the optional entry-level category value hoisted above
// the senses.
//
// Render never fails: malformed input degrades to recovered text fragments
// or the empty placeholder, and any unexpected failure during the walk is
// converted to an error placeholder embedding the reason.
func (r *Renderer) Render(ctx context.Context, raw string, prof *profile.Profile, sharedCategory string) (out string) {
	start := time.Now()
	outcome := "rendered"

	_, sp := r.tracer.Start(ctx, "dictmark.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int("dictmark.entry_bytes", len(raw)),
			attribute.Int("dictmark.rule_count", len(prof.Ordered())),
		))

	defer func() {
		if rec := recover(); rec != nil {
			outcome = "error"
			reason := fmt.Sprint(rec)
			r.logger.Error("render failed, returning error placeholder", "reason", reason)
			sp.RecordError(fmt.Errorf("render: %s", reason))
			sp.SetStatus(codes.Error, reason)
			if r.config.Metrics != nil {
				r.config.Metrics.panics.Inc()
			}
			out = span(errorClass, escapeHTML("rendering failed: "+reason))
		} else {
			sp.SetStatus(codes.Ok, "")
		}
		sp.SetAttributes(attribute.String("dictmark.outcome", outcome))
		sp.End()
		if r.config.Metrics != nil {
			r.config.Metrics.duration.Observe(time.Since(start).Seconds())
			r.config.Metrics.calls.WithLabelValues(outcome).Inc()
		}
	}()

	root, err := entry.Parse(raw)
	if err != nil {
		r.logger.Warn("entry parse failed, recovering text fragments", "err", err)
		if r.config.Metrics != nil {
			r.config.Metrics.parseFailures.Inc()
		}
		frags := entry.RecoverFragments(raw)
		if len(frags) == 0 {
			outcome = "empty"
			return PlaceholderNoContent
		}
		outcome = "recovered"
		wrapped := make([]string, 0, len(frags))
		for _, f := range frags {
			wrapped = append(wrapped, span("", escapeHTML(f)))
		}
		return strings.Join(wrapped, " ")
	}

	rctx := newRenderContext(root, prof, sharedCategory, r.config.DefaultLanguage)
	markup := r.renderNode(root, rctx)
	if strings.TrimSpace(markup) == "" {
		outcome = "empty"
		return PlaceholderNoContent
	}
	return markup
}
