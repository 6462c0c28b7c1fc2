package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"token-bridge/core/storage"
	"token-bridge/core/tokens"

	"github.com/minio/minio-go/v7"
)

// DocumentReport describes one stored token document.
type DocumentReport struct {
	Object       string   `json:"object"`
	Tokens       int      `json:"tokens"`
	UnknownKinds []string `json:"unknown_kinds,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// DocumentsReport summarizes every document under a prefix.
type DocumentsReport struct {
	Prefix    string           `json:"prefix"`
	Checked   int              `json:"checked"`
	Invalid   int              `json:"invalid"`
	Documents []DocumentReport `json:"documents"`
}

// CheckDocuments parses every object under prefix as a token document.
// Undecodable documents are reported, not returned as errors.
func CheckDocuments(ctx context.Context, client storage.Client, bucket, prefix string) (*DocumentsReport, error) {
	report := &DocumentsReport{
		Prefix:    prefix,
		Documents: make([]DocumentReport, 0),
	}

	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	keys := make([]string, 0)
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		doc := inspectDocument(ctx, client, bucket, key)
		if doc.Error != "" {
			report.Invalid++
		}
		report.Documents = append(report.Documents, doc)
	}
	report.Checked = len(keys)

	return report, nil
}

func inspectDocument(ctx context.Context, client storage.Client, bucket, key string) DocumentReport {
	out := DocumentReport{Object: key}

	data, err := storage.ReadObject(ctx, client, bucket, key)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	doc, err := tokens.Parse(data)
	if err != nil {
		out.Error = err.Error()
		return out
	}

	toks := tokens.Flatten(doc)
	out.Tokens = len(toks)

	seen := make(map[tokens.Kind]struct{})
	for _, t := range toks {
		if t.Kind.IsKnown() {
			continue
		}
		if _, ok := seen[t.Kind]; ok {
			continue
		}
		seen[t.Kind] = struct{}{}
		out.UnknownKinds = append(out.UnknownKinds, string(t.Kind))
	}
	sort.Strings(out.UnknownKinds)

	return out
}
