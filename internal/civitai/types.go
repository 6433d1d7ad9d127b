package civitai

import "strings"

// ModelVersion is the subset of the model-versions API response the tool
// cares about.
type ModelVersion struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	BaseModel   string      `json:"baseModel"`
	DownloadURL string      `json:"downloadUrl"`
	Model       ModelInfo   `json:"model"`
	Files       []ModelFile `json:"files"`
}

// ModelInfo identifies the parent model of a version.
type ModelInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ModelFile is one downloadable file belonging to a model version. Type is
// "Model" for the artifact itself, or a companion kind such as "VAE" or
// "Config".
type ModelFile struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	SizeKB      float64      `json:"sizeKB"`
	Primary     bool         `json:"primary"`
	DownloadURL string       `json:"downloadUrl"`
	Metadata    FileMetadata `json:"metadata"`
}

// FileMetadata carries the format/size/precision attributes the origin
// reports per file.
type FileMetadata struct {
	Format string `json:"format"`
	Size   string `json:"size"`
	FP     string `json:"fp"`
}

// PrimaryFile returns the file marked primary, falling back to the first
// file of type Model, or nil when the version has no model file.
func (v *ModelVersion) PrimaryFile() *ModelFile {
	for i := range v.Files {
		if v.Files[i].Primary {
			return &v.Files[i]
		}
	}
	for i := range v.Files {
		if v.Files[i].Type == "Model" {
			return &v.Files[i]
		}
	}
	return nil
}

// IsSafeTensor reports whether the file is in the safetensors format.
// Pickle-based formats can execute code on load, so non-safetensor files are
// refused unless explicitly forced.
func (f *ModelFile) IsSafeTensor() bool {
	return strings.EqualFold(f.Metadata.Format, "SafeTensor")
}
