// Package confio provides configuration text loading primitives.
//
// The confio package parses YAML (and YAML-compatible JSON) text into an
// in-memory document, expanding ${NAME} environment variable references
// before structural parsing. It also provides small file helpers used by
// the renderer and wizard packages.
//
// Usage:
//
//	doc, err := confio.ReadYAML("user: ${USER_NAME}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("user: %s\n", doc["user"])
package confio
