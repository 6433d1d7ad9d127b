package civitai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Result describes a completed transfer.
type Result struct {
	Path         string
	Filename     string
	BytesWritten int64
	SHA256       string
	Duration     time.Duration
}

// Fetch resolves rawInput and downloads the artifact into dir.
func (c *Client) Fetch(ctx context.Context, rawInput, dir string) (*Result, error) {
	resolved, err := c.Resolve(rawInput)
	if err != nil {
		return nil, err
	}
	return c.FetchURL(ctx, resolved, dir)
}

// FetchURL downloads the artifact at downloadURL into dir. The file is
// named from the content-disposition header when present, else from the
// last URL path segment. An existing file of the same name is never
// overwritten; a failed transfer leaves no partial file behind.
func (c *Client) FetchURL(ctx context.Context, downloadURL, dir string) (*Result, error) {
	if err := checkDestination(dir); err != nil {
		return nil, err
	}

	// Collision check on the URL-derived name before any network call.
	// The header-derived name is checked again once the response arrives.
	if name := urlFilename(downloadURL); name != "" {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return nil, &AlreadyExistsError{Path: p}
		}
	}

	req, err := c.newRequest(ctx, downloadURL)
	if err != nil {
		return nil, &TransferError{URL: downloadURL, Err: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransferError{URL: downloadURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransferError{URL: downloadURL, Status: resp.Status}
	}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/html") {
		return nil, &TransferError{
			URL:    downloadURL,
			Status: resp.Status,
			Err:    errors.New("received HTML instead of a file, possibly an invalid token or expired link"),
		}
	}

	name := sanitizeFilename(filenameFromResponse(resp))
	finalPath := filepath.Join(dir, name)
	if _, err := os.Stat(finalPath); err == nil {
		return nil, &AlreadyExistsError{Path: finalPath}
	}

	partPath := finalPath + ".part"
	f, err := os.Create(partPath)
	if err != nil {
		return nil, &DestinationError{Dir: dir, Err: err}
	}

	hasher := sha256.New()
	var w io.Writer = io.MultiWriter(f, hasher)
	if c.progress != nil {
		w = io.MultiWriter(w, &progressWriter{
			name:   name,
			total:  resp.ContentLength,
			report: c.progress,
		})
	}

	start := time.Now()
	written, copyErr := io.Copy(w, resp.Body)
	closeErr := f.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(partPath)
		return nil, &TransferError{URL: downloadURL, Err: copyErr}
	}

	if err := os.Rename(partPath, finalPath); err != nil {
		os.Remove(partPath)
		return nil, &DestinationError{Dir: dir, Err: err}
	}

	return &Result{
		Path:         finalPath,
		Filename:     name,
		BytesWritten: written,
		SHA256:       hex.EncodeToString(hasher.Sum(nil)),
		Duration:     time.Since(start),
	}, nil
}

// checkDestination verifies dir exists, is a directory and is writable
// before any network activity happens.
func checkDestination(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &DestinationError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return &DestinationError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}
	probe, err := os.CreateTemp(dir, ".civiget-probe-*")
	if err != nil {
		return &DestinationError{Dir: dir, Err: fmt.Errorf("not writable: %w", err)}
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

func urlFilename(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// filenameFromResponse prefers the content-disposition filename hint, then
// falls back to the final (post-redirect) URL's last path segment.
func filenameFromResponse(resp *http.Response) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			return params["filename"]
		}
	}
	return path.Base(resp.Request.URL.Path)
}

var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// sanitizeFilename strips any directory components and replaces characters
// that are unsafe in filenames. An empty result falls back to a timestamped
// name so a transfer never fails on a hostile header alone.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return fmt.Sprintf("civitai_download_%d", time.Now().Unix())
	}
	return name
}

type progressWriter struct {
	name    string
	total   int64
	written int64
	report  ProgressFunc
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	p.report(p.name, p.written, p.total)
	return len(b), nil
}
