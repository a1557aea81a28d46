package frontmatter

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FrontMatter is the typed YAML header of a catalog page. Every field is
// optional at this layer. Pages without an id are plain documentation and
// are never treated as component records.
type FrontMatter struct {
	ID       string `yaml:"id,omitempty" json:"id,omitempty"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Title    string `yaml:"title,omitempty" json:"title,omitempty"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
	Short    string `yaml:"short,omitempty" json:"short,omitempty"`
	Use      string `yaml:"use,omitempty" json:"use,omitempty"`
	QRURL    string `yaml:"qr_url,omitempty" json:"qr_url,omitempty"`
	Created  string `yaml:"created,omitempty" json:"created,omitempty"`
}

// Split separates a leading front matter block from the page body. The
// block must open with a "---" line at the very start of the content (a
// UTF-8 byte order mark is tolerated) and close with another "---" line.
// When no complete block exists the whole content is returned as body.
func Split(content string) (block, body string, found bool) {
	content = strings.TrimPrefix(content, "\uFEFF")
	if !strings.HasPrefix(content, "---") {
		return "", content, false
	}
	head, rest, ok := strings.Cut(content, "\n")
	if !ok || strings.TrimSpace(head) != "---" {
		return "", content, false
	}
	for offset := 0; ; {
		line, next := nextLine(rest, offset)
		if strings.TrimSpace(line) == "---" {
			if next > len(rest) {
				return rest[:offset], "", true
			}
			return rest[:offset], rest[next:], true
		}
		if next > len(rest) {
			break
		}
		offset = next
	}
	return "", content, false
}

// nextLine returns the line starting at offset without its newline, and
// the offset just past the newline. For a final unterminated line the
// returned offset is len(s)+1 so callers can detect the end of input.
func nextLine(s string, offset int) (string, int) {
	if i := strings.IndexByte(s[offset:], '\n'); i >= 0 {
		return s[offset : offset+i], offset + i + 1
	}
	return s[offset:], len(s) + 1
}

// Parse decodes the front matter block of a page. It returns the typed
// header, the body below the closing fence, and an error when the block
// is not YAML that fits the FrontMatter shape. A nil header with a nil
// error means the page carries no front matter at all.
func Parse(content string) (*FrontMatter, string, error) {
	block, body, found := Split(content)
	if !found {
		return nil, body, nil
	}
	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return nil, body, fmt.Errorf("parsing front matter: %w", err)
	}
	return &fm, body, nil
}
