package schemas

import "embed"

// SchemasFS embeds the JSON schemas for every integration event this
// service publishes. The directory layout encodes event name and version:
// events/<event-name>/v<major>.json.
//
//go:embed events
var SchemasFS embed.FS
