// Package civiget is the public API for fetching CivitAI model artifacts.
//
// Example:
//
//	result, err := civiget.Fetch("46846",
//	    civiget.WithDir("/data/models"),
//	    civiget.WithToken(os.Getenv("CIVITAI_TOKEN")),
//	)
package civiget

import (
	"context"

	"github.com/civiget/civiget/internal/civitai"
	"github.com/civiget/civiget/internal/config"
)

// Result describes a completed transfer.
type Result = civitai.Result

// Error types callers can match with errors.As.
type (
	InvalidInputError  = civitai.InvalidInputError
	AlreadyExistsError = civitai.AlreadyExistsError
	TransferError      = civitai.TransferError
	DestinationError   = civitai.DestinationError
)

// Resolve turns a model-version id, download URL, model page URL or AIR
// resource name into a canonical download URL without touching the network.
func Resolve(input string, opts ...Option) (string, error) {
	o := ApplyOptions(opts...)
	return civitai.NewClient(o.BaseURL, o.Token).Resolve(input)
}

// Fetch resolves input and downloads the artifact.
func Fetch(input string, opts ...Option) (*Result, error) {
	return FetchContext(context.Background(), input, opts...)
}

// FetchContext is Fetch with an explicit context for cancellation.
func FetchContext(ctx context.Context, input string, opts ...Option) (*Result, error) {
	o := ApplyOptions(opts...)

	dir := o.Dir
	if o.TypeCode != "" {
		d, err := config.TypeMap(o.TypeMap).Dir(o.TypeCode)
		if err != nil {
			return nil, err
		}
		dir = d
	}

	client := civitai.NewClient(o.BaseURL, o.Token)
	if o.Progress != nil {
		client.SetProgress(o.Progress)
	}
	return client.Fetch(ctx, input, dir)
}
