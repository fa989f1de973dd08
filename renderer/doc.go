// Package renderer turns configuration source files into rendered documents.
//
// The renderer loads a YAML or JSON config file through confio, which expands
// ${NAME} environment variable references, and re-emits the resulting
// document in the configured output format. Input paths are restricted to the
// configured project root.
//
// Usage:
//
//	r := renderer.New(cfg, log)
//	out, err := r.Render("configs/app.yml")
package renderer
