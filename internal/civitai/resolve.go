package civitai

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Resolve turns a user-supplied token into a canonical download URL. The
// accepted shapes, tried in order:
//
//  1. a bare positive integer (model-version id)
//  2. a URL already matching the canonical download endpoint (returned
//     unchanged, query string preserved)
//  3. a model page URL carrying a modelVersionId query parameter
//  4. an AIR resource name with source civitai
//
// Anything else fails with *InvalidInputError. Resolution never touches the
// network.
func (c *Client) Resolve(raw string) (string, error) {
	input := strings.TrimSpace(raw)

	if id, err := strconv.ParseInt(input, 10, 64); err == nil && id > 0 {
		return c.downloadURL(id), nil
	}

	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		if c.isCanonical(u) {
			return input, nil
		}
		if v := u.Query().Get("modelVersionId"); v != "" {
			if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
				return c.downloadURL(id), nil
			}
		}
		return "", &InvalidInputError{Input: raw}
	}

	if air, ok := parseAIR(input); ok && air.Source == "civitai" {
		versionID := air.Version
		if versionID == "" {
			versionID = air.ID
		}
		if id, err := strconv.ParseInt(versionID, 10, 64); err == nil && id > 0 {
			return c.downloadURL(id), nil
		}
	}

	return "", &InvalidInputError{Input: raw}
}

func (c *Client) downloadURL(id int64) string {
	return fmt.Sprintf("%s%s%d", c.baseURL, downloadPathPrefix, id)
}

// isCanonical reports whether u already points at the download endpoint of
// this client's origin (or the production origin).
func (c *Client) isCanonical(u *url.URL) bool {
	if !c.knownHost(u.Host) {
		return false
	}
	rest, ok := strings.CutPrefix(u.Path, downloadPathPrefix)
	if !ok {
		return false
	}
	id, _, _ := strings.Cut(rest, "/")
	n, err := strconv.ParseInt(id, 10, 64)
	return err == nil && n > 0
}

func (c *Client) knownHost(host string) bool {
	if host == "civitai.com" || strings.HasSuffix(host, ".civitai.com") {
		return true
	}
	if base, err := url.Parse(c.baseURL); err == nil && base.Host == host {
		return true
	}
	return false
}

// VersionIDFromURL extracts the model-version id from a canonical download
// URL. Reports false for any other URL shape.
func VersionIDFromURL(rawurl string) (int64, bool) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return 0, false
	}
	rest, ok := strings.CutPrefix(u.Path, downloadPathPrefix)
	if !ok {
		return 0, false
	}
	id, _, _ := strings.Cut(rest, "/")
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
