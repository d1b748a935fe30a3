package quotes

import "embed"

// QuotesJSON holds the shipped catalog so the binary carries its own strings.
//
//go:embed quotes.json
var QuotesJSON embed.FS
