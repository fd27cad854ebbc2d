package data

import (
	_ "embed"
)

//go:embed seed/system-assets.json
var SystemAssets []byte
