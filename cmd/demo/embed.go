package main

import "embed"

//go:embed configs/*.json
var configFS embed.FS

//go:embed locales/*.po
var localeFS embed.FS
