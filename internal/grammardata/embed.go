// Package grammardata embeds the sample grammars shipped inside the cky
// binary. The embedded filesystem is rooted at "grammars/".
package grammardata

import "embed"

// Dir is the directory inside FS holding the grammar documents.
const Dir = "grammars"

// FS contains the embedded grammar files (*.json, *.yml).
//
//go:embed grammars/*
var FS embed.FS
