package civiget

// Version information for civiget.
const (
	// Version is the current version of civiget.
	Version = "0.1.0"
)

// FetchOptions configures a download.
type FetchOptions struct {
	// Dir is the destination directory. Ignored when TypeCode is set and
	// resolves through TypeMap.
	Dir string

	// TypeCode selects the destination from TypeMap instead of Dir.
	TypeCode string

	// TypeMap maps model-type codes to destination directories.
	TypeMap map[string]string

	// Token authenticates requests for gated content.
	Token string

	// BaseURL overrides the origin; empty means the production origin.
	BaseURL string

	// Progress, when set, receives transfer progress callbacks.
	Progress func(name string, written, total int64)
}

// DefaultOptions returns a new FetchOptions with default values.
func DefaultOptions() *FetchOptions {
	return &FetchOptions{
		Dir: ".",
	}
}

// Option is a functional option for configuring a fetch.
type Option func(*FetchOptions)

// WithDir sets the destination directory.
func WithDir(dir string) Option {
	return func(o *FetchOptions) {
		o.Dir = dir
	}
}

// WithTypeCode selects the destination by model-type code.
func WithTypeCode(code string) Option {
	return func(o *FetchOptions) {
		o.TypeCode = code
	}
}

// WithTypeMap supplies the code-to-directory map used by WithTypeCode.
func WithTypeMap(m map[string]string) Option {
	return func(o *FetchOptions) {
		o.TypeMap = m
	}
}

// WithToken attaches a bearer token for gated content.
func WithToken(token string) Option {
	return func(o *FetchOptions) {
		o.Token = token
	}
}

// WithBaseURL points the client at a different origin.
func WithBaseURL(baseURL string) Option {
	return func(o *FetchOptions) {
		o.BaseURL = baseURL
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn func(name string, written, total int64)) Option {
	return func(o *FetchOptions) {
		o.Progress = fn
	}
}

// ApplyOptions applies functional options to FetchOptions.
func ApplyOptions(opts ...Option) *FetchOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
