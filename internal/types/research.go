package types

// ResearchSource is a citation offered alongside research highlights.
type ResearchSource struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Note  string `json:"note" yaml:"note"`
}

// ResearchResult bundles highlight sentences with their sources.
type ResearchResult struct {
	Highlights []string         `json:"highlights" yaml:"highlights"`
	Sources    []ResearchSource `json:"sources" yaml:"sources"`
}

// Clone returns a deep copy so callers cannot mutate shared tables.
func (r ResearchResult) Clone() ResearchResult {
	out := ResearchResult{
		Highlights: make([]string, len(r.Highlights)),
		Sources:    make([]ResearchSource, len(r.Sources)),
	}
	copy(out.Highlights, r.Highlights)
	copy(out.Sources, r.Sources)
	return out
}

// ExampleBill is a short summary of a successful bill from the example library.
type ExampleBill struct {
	Title      string   `json:"title" yaml:"title"`
	Highlights []string `json:"highlights" yaml:"highlights"`
}

// ExampleCategory groups example bills by focus area.
type ExampleCategory struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Examples    []ExampleBill `json:"examples" yaml:"examples"`
}
