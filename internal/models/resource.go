package models

type ResourceType string

const (
	ResourcePrompt ResourceType = "prompt"
	ResourceTool   ResourceType = "tool"
)

var ResourceTypes = []ResourceType{ResourcePrompt, ResourceTool}

func ParseResourceType(s string) ResourceType {
	for _, t := range ResourceTypes {
		if string(t) == s {
			return t
		}
	}
	return ResourcePrompt
}

type Resource struct {
	ID          FlexString   `json:"_id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
}

// ResourceInput is the admin create payload. Tags is never nil so it
// serialises as an array.
type ResourceInput struct {
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
}
