package civitai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetModelVersion fetches the metadata record for a model version.
func (c *Client) GetModelVersion(ctx context.Context, id int64) (*ModelVersion, error) {
	url := fmt.Sprintf("%s%s%d", c.baseURL, modelVersionPath, id)
	req, err := c.newRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model version %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model version %d: unexpected status %s", id, resp.Status)
	}

	var version ModelVersion
	if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
		return nil, fmt.Errorf("model version %d: decoding response: %w", id, err)
	}
	return &version, nil
}
