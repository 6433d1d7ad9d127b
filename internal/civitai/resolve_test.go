package civitai

import (
	"errors"
	"net/http"
	"testing"
)

// countingTransport fails every request and counts attempts, to prove a
// code path never touches the network.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("no network call expected")
}

func newOfflineClient(t *testing.T) (*Client, *countingTransport) {
	t.Helper()
	transport := &countingTransport{}
	client := NewClient("", "")
	client.SetHTTPClient(&http.Client{Transport: transport})
	return client, transport
}

func TestResolveInteger(t *testing.T) {
	client, _ := newOfflineClient(t)

	url, err := client.Resolve("46846")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	want := "https://civitai.com/api/download/models/46846"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}
}

func TestResolveCanonicalURLIdentity(t *testing.T) {
	client, _ := newOfflineClient(t)

	inputs := []string{
		"https://civitai.com/api/download/models/46846",
		"https://civitai.com/api/download/models/46846?type=Model&format=SafeTensor",
		"http://civitai.com/api/download/models/1",
	}
	for _, input := range inputs {
		url, err := client.Resolve(input)
		if err != nil {
			t.Fatalf("resolve(%q) failed: %v", input, err)
		}
		if url != input {
			t.Errorf("resolve(%q) = %q, expected identity", input, url)
		}
	}
}

func TestResolveModelPageURL(t *testing.T) {
	client, _ := newOfflineClient(t)

	fromPage, err := client.Resolve("https://civitai.com/models/4201?modelVersionId=46846")
	if err != nil {
		t.Fatalf("resolve page URL failed: %v", err)
	}
	fromID, err := client.Resolve("46846")
	if err != nil {
		t.Fatalf("resolve id failed: %v", err)
	}
	if fromPage != fromID {
		t.Errorf("page URL resolved to %q, id resolved to %q", fromPage, fromID)
	}
}

func TestResolveAIR(t *testing.T) {
	client, _ := newOfflineClient(t)

	fromAIR, err := client.Resolve("urn:air:flux1:lora:civitai:667004@746484")
	if err != nil {
		t.Fatalf("resolve AIR failed: %v", err)
	}
	fromID, err := client.Resolve("746484")
	if err != nil {
		t.Fatalf("resolve id failed: %v", err)
	}
	if fromAIR != fromID {
		t.Errorf("AIR resolved to %q, id resolved to %q", fromAIR, fromID)
	}
}

func TestResolveAIRWrongSource(t *testing.T) {
	client, _ := newOfflineClient(t)

	_, err := client.Resolve("urn:air:sd1:model:huggingface:2421@43533")
	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestResolveInvalidInput(t *testing.T) {
	client, transport := newOfflineClient(t)

	inputs := []string{
		"",
		"not a model",
		"-5",
		"46846abc",
		"https://example.com/models/123",
		"https://civitai.com/models/4201",
		"ftp://civitai.com/api/download/models/46846",
	}
	for _, input := range inputs {
		_, err := client.Resolve(input)
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Errorf("resolve(%q): expected InvalidInputError, got %v", input, err)
			continue
		}
		if invalid.Input != input {
			t.Errorf("resolve(%q): error echoes %q", input, invalid.Input)
		}
	}

	if transport.calls != 0 {
		t.Errorf("resolution made %d network calls, expected 0", transport.calls)
	}
}

func TestResolveCustomBaseURL(t *testing.T) {
	client := NewClient("http://127.0.0.1:9999", "")

	url, err := client.Resolve("46846")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	want := "http://127.0.0.1:9999/api/download/models/46846"
	if url != want {
		t.Errorf("expected %q, got %q", want, url)
	}

	// Identity must also hold for URLs on the configured origin.
	got, err := client.Resolve(url)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != url {
		t.Errorf("expected identity for %q, got %q", url, got)
	}
}

func TestVersionIDFromURL(t *testing.T) {
	tests := []struct {
		url string
		id  int64
		ok  bool
	}{
		{"https://civitai.com/api/download/models/46846", 46846, true},
		{"https://civitai.com/api/download/models/46846?format=SafeTensor", 46846, true},
		{"https://civitai.com/models/4201", 0, false},
		{"https://civitai.com/api/download/models/abc", 0, false},
	}
	for _, tt := range tests {
		id, ok := VersionIDFromURL(tt.url)
		if id != tt.id || ok != tt.ok {
			t.Errorf("VersionIDFromURL(%q) = (%d, %v), expected (%d, %v)", tt.url, id, ok, tt.id, tt.ok)
		}
	}
}
