package civitai

import "testing"

func TestParseAIRFull(t *testing.T) {
	air, ok := parseAIR("urn:air:flux1:lora:civitai:667004@746484")
	if !ok {
		t.Fatal("expected AIR to parse")
	}
	if air.Ecosystem != "flux1" {
		t.Errorf("expected ecosystem 'flux1', got %q", air.Ecosystem)
	}
	if air.Type != "lora" {
		t.Errorf("expected type 'lora', got %q", air.Type)
	}
	if air.Source != "civitai" {
		t.Errorf("expected source 'civitai', got %q", air.Source)
	}
	if air.ID != "667004" {
		t.Errorf("expected id '667004', got %q", air.ID)
	}
	if air.Version != "746484" {
		t.Errorf("expected version '746484', got %q", air.Version)
	}
}

func TestParseAIRWithoutPrefixes(t *testing.T) {
	air, ok := parseAIR("sd1:model:civitai:2421@43533")
	if !ok {
		t.Fatal("expected AIR to parse")
	}
	if air.Ecosystem != "sd1" || air.Version != "43533" {
		t.Errorf("unexpected parse: %+v", air)
	}
}

func TestParseAIRFormatSuffix(t *testing.T) {
	air, ok := parseAIR("urn:air:sdxl:model:civitai:2421@43533.safetensor")
	if !ok {
		t.Fatal("expected AIR to parse")
	}
	if air.Version != "43533" {
		t.Errorf("expected version '43533', got %q", air.Version)
	}
	if air.Format != "safetensor" {
		t.Errorf("expected format 'safetensor', got %q", air.Format)
	}
}

func TestParseAIRWithoutVersion(t *testing.T) {
	air, ok := parseAIR("urn:air:sd1:embedding:civitai:4629")
	if !ok {
		t.Fatal("expected AIR to parse")
	}
	if air.ID != "4629" || air.Version != "" {
		t.Errorf("unexpected parse: %+v", air)
	}
}

func TestParseAIRInvalid(t *testing.T) {
	inputs := []string{
		"",
		"46846",
		"not-an-air",
		"https://civitai.com/models/4201",
	}
	for _, input := range inputs {
		if _, ok := parseAIR(input); ok {
			t.Errorf("parseAIR(%q): expected no match", input)
		}
	}
}
