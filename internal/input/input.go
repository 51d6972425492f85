// Package input acquires the root document from a file, stdin or an HTTP(S)
// URL and extracts its (base, value) pairs.
//
// The document shape is
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"},
//	  ...
//	}
//
// Entry IDs are ordered numerically; IDs that are not decimal integers sort
// after the numeric ones in lexical order.
package input

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"sort"
	"strings"

	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/radix"
	"github.com/agbru/polyroots/internal/rootset"
)

// StdinSource is the source name that reads the document from standard input.
const StdinSource = "-"

// maxDocumentSize bounds how much of a remote document is read.
const maxDocumentSize = 64 << 20

// Document is a parsed input document.
type Document struct {
	// Source is the file path, URL or "-" the document was read from.
	Source string
	// N is the declared number of roots (keys.n).
	N int
	// K is the declared construction size (keys.k).
	K int
	// Entries holds the encoded roots in ID order.
	Entries []rootset.Encoded
}

// Warnings returns non-fatal inconsistencies in the document.
func (d Document) Warnings() []string {
	var w []string
	if d.N != len(d.Entries) {
		w = append(w, fmt.Sprintf("keys.n = %d but %d roots were supplied", d.N, len(d.Entries)))
	}
	if d.K > d.N {
		w = append(w, fmt.Sprintf("keys.k = %d exceeds keys.n = %d", d.K, d.N))
	}
	return w
}

type keys struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type entry struct {
	Base  *string `json:"base"`
	Value *string `json:"value"`
}

// Load reads and parses the document named by source. Sources starting with
// http:// or https:// are fetched with client (http.DefaultClient when nil)
// under ctx.
func Load(ctx context.Context, source string, client *http.Client) (Document, error) {
	var (
		r   io.ReadCloser
		err error
	)
	switch {
	case source == StdinSource:
		r = io.NopCloser(os.Stdin)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		r, err = fetch(ctx, source, client)
	default:
		r, err = os.Open(source)
	}
	if err != nil {
		return Document{}, apperrors.WrapError(err, "failed to open input %s", source)
	}
	defer r.Close()

	doc, err := Parse(r)
	if err != nil {
		return Document{}, apperrors.WrapError(err, "failed to parse input %s", source)
	}
	doc.Source = source
	return doc, nil
}

func fetch(ctx context.Context, url string, client *http.Client) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected HTTP status %s", resp.Status)
	}
	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxDocumentSize), resp.Body}, nil
}

// Parse decodes a document from r.
func Parse(r io.Reader) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, apperrors.ValidationError{Field: "document", Message: err.Error()}
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return Document{}, apperrors.ValidationError{Field: "keys", Message: "missing"}
	}
	var k keys
	if err := json.Unmarshal(keysRaw, &k); err != nil {
		return Document{}, apperrors.ValidationError{Field: "keys", Message: err.Error()}
	}
	if k.N == nil || k.K == nil {
		return Document{}, apperrors.ValidationError{Field: "keys", Message: "both n and k are required"}
	}
	if *k.N < 0 || *k.K < 0 {
		return Document{}, apperrors.ValidationError{Field: "keys", Message: "n and k must be non-negative"}
	}

	ids := make([]string, 0, len(raw)-1)
	for id := range raw {
		if id != "keys" {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)

	doc := Document{N: *k.N, K: *k.K, Entries: make([]rootset.Encoded, 0, len(ids))}
	for _, id := range ids {
		enc, err := parseEntry(id, raw[id])
		if err != nil {
			return Document{}, err
		}
		doc.Entries = append(doc.Entries, enc)
	}
	return doc, nil
}

func parseEntry(id string, msg json.RawMessage) (rootset.Encoded, error) {
	var e entry
	if err := json.Unmarshal(msg, &e); err != nil {
		return rootset.Encoded{}, apperrors.ValidationError{Field: id, Message: err.Error()}
	}
	if e.Base == nil || e.Value == nil {
		return rootset.Encoded{}, apperrors.ValidationError{Field: id, Message: "both base and value are required"}
	}
	base, err := radix.DecodeUint64(*e.Base, 10)
	if err != nil {
		return rootset.Encoded{}, apperrors.WrapError(err, "base of root %q", id)
	}
	if base > math.MaxInt32 {
		return rootset.Encoded{}, apperrors.WrapError(apperrors.OverflowError{Value: *e.Base, Bits: 32}, "base of root %q", id)
	}
	return rootset.Encoded{ID: id, Base: int(base), Digits: *e.Value}, nil
}

// sortIDs orders decimal IDs numerically, then everything else lexically.
func sortIDs(ids []string) {
	type key struct {
		numeric bool
		n       uint64
	}
	keys := make(map[string]key, len(ids))
	for _, id := range ids {
		n, err := radix.DecodeUint64(id, 10)
		keys[id] = key{numeric: err == nil, n: n}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := keys[ids[i]], keys[ids[j]]
		switch {
		case a.numeric && b.numeric:
			if a.n != b.n {
				return a.n < b.n
			}
			return ids[i] < ids[j]
		case a.numeric != b.numeric:
			return a.numeric
		default:
			return ids[i] < ids[j]
		}
	})
}
