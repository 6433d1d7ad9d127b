package civitai

import "regexp"

// AIR is a parsed Artificial Intelligence Resource name:
//
//	urn:air:{ecosystem}:{type}:{source}:{id}@{version}.{format}
//
// The urn: and air: prefixes, the @version and the .format suffix are all
// optional. Example: urn:air:flux1:lora:civitai:667004@746484
type AIR struct {
	Ecosystem string
	Type      string
	Source    string
	ID        string
	Version   string
	Format    string
}

var airPattern = regexp.MustCompile(
	`^(?:urn:)?(?:air:)?` +
		`(?P<ecosystem>[^:]+):` +
		`(?P<type>[^:]+):` +
		`(?P<source>[^:]+):` +
		`(?P<id>[^@.]+)` +
		`(?:@(?P<version>[^.]+))?` +
		`(?:\.(?P<format>\w+))?$`)

// parseAIR parses an AIR string. ok is false when the input does not match
// the AIR shape at all.
func parseAIR(s string) (AIR, bool) {
	m := airPattern.FindStringSubmatch(s)
	if m == nil {
		return AIR{}, false
	}
	fields := make(map[string]string, len(m))
	for i, name := range airPattern.SubexpNames() {
		if name != "" {
			fields[name] = m[i]
		}
	}
	return AIR{
		Ecosystem: fields["ecosystem"],
		Type:      fields["type"],
		Source:    fields["source"],
		ID:        fields["id"],
		Version:   fields["version"],
		Format:    fields["format"],
	}, true
}
