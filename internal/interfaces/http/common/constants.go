package common

const (
	// MaxJSONRequestBody limits JSON request bodies for admin/public endpoints.
	MaxJSONRequestBody = 1 << 20
	// MaxFormRequestBody limits form submissions to the settings/store routes.
	MaxFormRequestBody = 2 << 20
	// DefaultPageLimit is applied when no limit query parameter is given.
	DefaultPageLimit = 20
	// MaxPageLimit caps the limit query parameter on list endpoints.
	MaxPageLimit = 100
)
