package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Parse errors (D001-D099)
	// ============================================

	"D001": {
		Category: CategoryParse,
		Message:  "Entry document is not well-formed",
		Detail:   "The entry XML could not be parsed. Rendering degrades to literal text fragments, so output may be incomplete.",
	},
	"D002": {
		Category: CategoryParse,
		Message:  "Entry document is empty",
		Detail:   "No element was found in the input document.",
	},

	// ============================================
	// Profile errors (D100-D199)
	// ============================================

	"D100": {
		Category: CategoryProfile,
		Message:  "Display profile could not be decoded",
		Detail:   "The profile JSON is invalid. Expected a rule array or a {\"rules\": [...]} object.",
	},
	"D101": {
		Category: CategoryProfile,
		Message:  "Display profile file could not be read",
	},

	// ============================================
	// Media errors (D200-D299)
	// ============================================

	"D200": {
		Category: CategoryMedia,
		Message:  "Media manifest could not be loaded",
		Detail:   "Illustration references will be resolved without fingerprinting.",
	},
	"D201": {
		Category: CategoryMedia,
		Message:  "Media object not found",
	},

	// ============================================
	// Config errors (D300-D399)
	// ============================================

	"D300": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be loaded",
		Detail:   "dictmark.json is missing or invalid; defaults are in effect.",
	},

	// ============================================
	// CLI errors (D400-D499)
	// ============================================

	"D400": {
		Category: CategoryCLI,
		Message:  "Entry input could not be read",
	},
}
