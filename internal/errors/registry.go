package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vdiff.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Config (E120-E149)
	"E120": {
		Category: CategoryConfig,
		Message:  "Failed to read configuration",
		DocURL:   docBase + "E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   docBase + "E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		DocURL:   docBase + "E141",
	},

	// Apply (E201-E219). Raised as panics: the host tree no longer mirrors
	// the tree the patch script was computed against.
	"E201": {
		Category: CategoryApply,
		Message:  "Host child index out of range",
		Detail:   "A patch addressed a child position that does not exist in the host tree.",
		DocURL:   docBase + "E201",
	},
	"E202": {
		Category: CategoryApply,
		Message:  "Child patch on a host text node",
		Detail:   "ADD and nested patches need an element; host text nodes have no children.",
		DocURL:   docBase + "E202",
	},
	"E203": {
		Category: CategoryApply,
		Message:  "Replace of a detached host node",
		Detail:   "A top-level REPLACE needs the target's parent to swap the node in place.",
		DocURL:   docBase + "E203",
	},

	// Tree documents (E301-E319)
	"E301": {
		Category: CategoryTree,
		Message:  "Invalid tree document",
		DocURL:   docBase + "E301",
	},
	"E302": {
		Category: CategoryTree,
		Message:  "Tree document not found",
		DocURL:   docBase + "E302",
	},
	"E303": {
		Category: CategoryTree,
		Message:  "Unsupported tree document format",
		Detail:   "Tree documents must end in .json, .yaml or .yml.",
		DocURL:   docBase + "E303",
	},

	// Protocol (E401-E419)
	"E401": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		DocURL:   docBase + "E401",
	},
	"E402": {
		Category: CategoryProtocol,
		Message:  "Unknown patch type",
		DocURL:   docBase + "E402",
	},
	"E403": {
		Category: CategoryProtocol,
		Message:  "Event target not found",
		Detail:   "The event path does not lead to a node of the session's tree.",
		DocURL:   docBase + "E403",
	},
	"E404": {
		Category: CategoryProtocol,
		Message:  "Event handler failed",
		DocURL:   docBase + "E404",
	},

	// Export (E501-E519)
	"E501": {
		Category: CategoryExport,
		Message:  "Failed to export rendered output",
		DocURL:   docBase + "E501",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
