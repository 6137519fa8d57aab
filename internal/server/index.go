package server

import _ "embed"

// indexHTML is the single-page UI shell. All data comes from /api.
//
//go:embed index.html
var indexHTML []byte
