package traefik

import "github.com/tidwall/gjson"

// Test-only accessors for the normalizer
var (
	ParseRouters          = parseRouters
	ParseService          = parseService
	ParseServiceDirectory = parseServiceDirectory
)

func Parse(raw string) gjson.Result {
	return gjson.Parse(raw)
}
