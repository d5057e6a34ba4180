package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/readleaf/readleaf/internal/store"
)

const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Reading Practice</title>
<style>
body { max-width: 42rem; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; }
h1, h2 { font-family: Helvetica, Arial, sans-serif; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders a practice attempt as a standalone HTML page by
// converting the Markdown rendition.
func HTML(a *store.Attempt) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(a)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return fmt.Sprintf(htmlShell, buf.String()), nil
}
