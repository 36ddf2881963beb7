// Where: cli/assets/embed.go
// What: Embedded config schema and output templates.
// Why: Ship validation and presentation assets inside the binary.
package assets

import "embed"

//go:embed schema/config.schema.json
var ConfigSchema []byte

//go:embed templates/*.tmpl
var TemplatesFS embed.FS
