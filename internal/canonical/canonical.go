// Package canonical serializes validated documents deterministically and
// derives their content hash.
//
// The canonical form is cty's JSON encoding of the document: object keys in
// lexicographic order, no insignificant whitespace, numbers in their shortest
// round-trip decimal form and unset optional fields as null. The hash is the
// first HashLength hex digits of the SHA-256 of those bytes, so two sources
// that normalize to the same values always share a hash.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/specialistvlad/bedc/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

const (
	// HashLength is the number of hex digits kept from the SHA-256 digest.
	// Downstream caches compare hashes for equality, so it never changes
	// within a schema version.
	HashLength = 16

	// SchemaVersion identifies the artifact layout.
	SchemaVersion = 1

	// CompilerName is written into every artifact's metadata.
	CompilerName = "bedc"
)

// Value converts a document into its cty object form.
func Value(doc *model.Document) (val cty.Value, err error) {
	if doc == nil {
		return cty.NilVal, fmt.Errorf("canonical: nil document")
	}
	// gocty panics on NaN, which only an unvalidated document can hold.
	defer func() {
		if r := recover(); r != nil {
			val, err = cty.NilVal, fmt.Errorf("canonical: document is not serializable: %v", r)
		}
	}()

	ty, err := gocty.ImpliedType(doc)
	if err != nil {
		return cty.NilVal, fmt.Errorf("canonical: failed to derive document type: %w", err)
	}
	val, err = gocty.ToCtyValue(doc, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("canonical: failed to convert document: %w", err)
	}
	return val, nil
}

// Canonicalize returns the canonical bytes of doc and their hash. Only the
// six document sections are covered; artifact metadata is not.
func Canonicalize(doc *model.Document) ([]byte, string, error) {
	val, err := Value(doc)
	if err != nil {
		return nil, "", err
	}
	canonical, err := marshal(val)
	if err != nil {
		return nil, "", err
	}
	return canonical, Hash(canonical), nil
}

// Hash returns the truncated hex SHA-256 of canonical bytes.
func Hash(canonical []byte) string {
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])[:HashLength]
}

// Artifact renders the JSON document handed to downstream generators: the
// six sections plus a metadata block carrying the hash.
func Artifact(doc *model.Document) ([]byte, error) {
	val, err := Value(doc)
	if err != nil {
		return nil, err
	}
	canonical, err := marshal(val)
	if err != nil {
		return nil, err
	}

	attrs := val.AsValueMap()
	attrs["metadata"] = cty.ObjectVal(map[string]cty.Value{
		"schema_version": cty.NumberIntVal(SchemaVersion),
		"compiler_name":  cty.StringVal(CompilerName),
		"hash":           cty.StringVal(Hash(canonical)),
	})
	return marshal(cty.ObjectVal(attrs))
}

func marshal(val cty.Value) ([]byte, error) {
	out, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, fmt.Errorf("canonical: failed to marshal: %w", err)
	}
	return out, nil
}
