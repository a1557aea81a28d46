// Package frontmatter handles the YAML headers that open catalog pages.
// It splits a page into header block and Markdown body without touching
// anything below the closing fence, decodes the block into a typed
// FrontMatter, and validates the raw block against the JSON Schema
// embedded in the schema directory.
//
// The schema checks field types only. Identifier syntax and the
// category/identifier cross-check are semantic rules that belong to the
// scanner, so a page can fail them with a distinct diagnostic.
package frontmatter
