package textdoc

import (
	"strings"

	"github.com/domonda/go-texttable"
)

// frontMatterFences maps the opening fence of a front matter block
// to the fences that can close it.
var frontMatterFences = map[string][]string{
	"---": {"---", "..."}, // YAML
	"+++": {"+++"},        // TOML
}

// FrontMatterRange returns the line range of a YAML or TOML front matter
// block at the start of lines including its fence lines,
// or an empty range if there is none.
//
// The fences "---" and "+++" also match the grammar of simple
// and grid tables, so front matter is usually excluded from formatting.
func FrontMatterRange(lines texttable.Lines) texttable.Range {
	if len(lines) == 0 {
		return texttable.EmptyRange(0)
	}
	closing, ok := frontMatterFences[strings.TrimRight(lines[0], " \t")]
	if !ok {
		return texttable.EmptyRange(0)
	}
	for i := 1; i < len(lines); i++ {
		fence := strings.TrimRight(lines[i], " \t")
		for _, c := range closing {
			if fence == c {
				return texttable.Range{Start: 0, End: i}
			}
		}
	}
	return texttable.EmptyRange(0)
}
