// Package device reports properties of the rendering adapter behind
// the current graphics context.
package device

// AdapterInfo describes the adapter driving the rendering context
type AdapterInfo struct {
	Vendor          string `json:"vendor"`
	Renderer        string `json:"renderer"`
	Version         string `json:"version"`
	ShadingLanguage string `json:"shadingLanguage"`
}
