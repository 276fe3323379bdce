// Package dictmark provides the public API for the dictmark rendering
// engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/dictmark-dev/dictmark"
//
// Usage:
//
//	prof, _ := dictmark.LoadProfile("profile.json")
//	renderer := dictmark.NewRenderer(dictmark.Config{DefaultLanguage: "en"})
//	html := renderer.Render(ctx, entryXML, prof, "Noun")
package dictmark

import (
	"context"

	"github.com/dictmark-dev/dictmark/pkg/profile"
	"github.com/dictmark-dev/dictmark/pkg/render"
)

// Core renderer types, re-exported from pkg/render.
type (
	// Renderer converts raw entry documents to markup.
	Renderer = render.Renderer

	// Config configures a Renderer.
	Config = render.Config

	// Metrics holds the renderer's Prometheus instruments.
	Metrics = render.Metrics
)

// Display profile types, re-exported from pkg/profile.
type (
	// Profile is an ordered display profile.
	Profile = profile.Profile

	// Rule is one display-profile entry.
	Rule = profile.Rule

	// Filter is a rule's type-attribute expression.
	Filter = profile.Filter

	// Visibility controls when a rule's output is emitted.
	Visibility = profile.Visibility

	// Mode selects the wrapper element for a rule.
	Mode = profile.Mode
)

// Visibility and mode values.
const (
	VisibilityAlways    = profile.VisibilityAlways
	VisibilityIfContent = profile.VisibilityIfContent
	VisibilityNever     = profile.VisibilityNever

	ModeInline = profile.ModeInline
	ModeBlock  = profile.ModeBlock
)

// PlaceholderNoContent is the fixed markup returned when nothing renderable
// was found.
const PlaceholderNoContent = render.PlaceholderNoContent

// Constructors, re-exported.
var (
	NewRenderer = render.NewRenderer
	NewMetrics  = render.NewMetrics

	NewProfile    = profile.New
	LoadProfile   = profile.Load
	DecodeProfile = profile.Decode
)

// Render is a one-shot convenience around a default Renderer. Applications
// rendering more than once should keep their own Renderer.
func Render(ctx context.Context, raw string, prof *Profile, sharedCategory string) string {
	return render.NewRenderer(render.Config{}).Render(ctx, raw, prof, sharedCategory)
}
