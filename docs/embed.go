package docs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// ScriptID is the id of the <script> element that carries the Map.
	ScriptID = "docbundle"
	// Decl is the javascript declaration the Map literal is assigned to.
	Decl = "const docs = "
)

// Marshal encodes m as a JSON object literal that is safe to drop straight into a <script> element.
// Keys come out sorted, and <, >, &, U+2028 and U+2029 are \u-escaped, so no document can close the script
// or open a comment inside it.
func Marshal(m Map) ([]byte, error) {
	if m == nil {
		m = Map{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding %d documents: %w", len(m), err)
	}
	return b, nil
}

var (
	// ErrNoDataScript is returned by Extract when the page has no <script id="docbundle">.
	ErrNoDataScript = errors.New("no <script id=\"" + ScriptID + "\"> element")
	// ErrNoDataLiteral is returned by Extract when the data script doesn't declare the Map.
	ErrNoDataLiteral = errors.New("no " + strings.TrimSpace(Decl) + " declaration in data script")
)

// Extract reads a generated page and decodes the Map embedded in it.
func Extract(r io.Reader) (Map, error) {
	src, err := dataScript(html.NewTokenizer(r))
	if err != nil {
		return nil, err
	}
	i := strings.Index(src, Decl)
	if i < 0 {
		return nil, ErrNoDataLiteral
	}
	var m Map
	// the decoder stops after the first value, so whatever follows the literal doesn't matter.
	if err := json.NewDecoder(strings.NewReader(src[i+len(Decl):])).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding embedded documents: %w", err)
	}
	return m, nil
}

// dataScript returns the raw text of the first <script id="docbundle"> element.
func dataScript(z *html.Tokenizer) (string, error) {
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", fmt.Errorf("reading page: %w", err)
			}
			return "", ErrNoDataScript
		case html.StartTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Script || attr(tok, "id") != ScriptID {
				continue
			}
			var b strings.Builder
			for z.Next() == html.TextToken {
				b.Write(z.Text())
			}
			return b.String(), nil
		}
	}
}

func attr(tok html.Token, key string) string {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
