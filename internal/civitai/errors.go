package civitai

import "fmt"

// InvalidInputError is returned when an input string matches none of the
// recognized identifier shapes (numeric id, download URL, model page URL,
// AIR). The literal input is echoed for diagnosis.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("not a recognized model identifier or download URL: %q", e.Input)
}

// AlreadyExistsError is returned when the destination file is already
// present. Artifacts can be very large, so an existing file is never
// silently overwritten.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// TransferError is returned for any network or HTTP failure: connection
// errors, non-2xx statuses, or an interrupted stream. Any partial file has
// been removed by the time this error is returned.
type TransferError struct {
	URL    string
	Status string
	Err    error
}

func (e *TransferError) Error() string {
	switch {
	case e.Status != "" && e.Err != nil:
		return fmt.Sprintf("download failed: %s (%s): %v", e.Status, e.URL, e.Err)
	case e.Status != "":
		return fmt.Sprintf("download failed: %s (%s)", e.Status, e.URL)
	default:
		return fmt.Sprintf("download failed (%s): %v", e.URL, e.Err)
	}
}

func (e *TransferError) Unwrap() error { return e.Err }

// DestinationError is returned when the destination directory is missing,
// not a directory, or not writable. It is checked before any network
// activity.
type DestinationError struct {
	Dir string
	Err error
}

func (e *DestinationError) Error() string {
	return fmt.Sprintf("destination directory %s: %v", e.Dir, e.Err)
}

func (e *DestinationError) Unwrap() error { return e.Err }
