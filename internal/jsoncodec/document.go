package jsoncodec

import "dyndata/internal/data"

// Document is a convenience gateway bundling a root DynamicData with
// the Decode/Encode operations that act on it, mirroring the
// original's Json class (SPEC_FULL.md §7 item 1). It is the one type
// in this module allowed to hold the import-cycle-causing dependency
// on both internal/data and the codec functions of this package.
type Document struct {
	root *data.DynamicData
}

// NewDocument wraps an already-built tree, or a fresh Null root when
// root is nil.
func NewDocument(root *data.DynamicData) *Document {
	if root == nil {
		root = data.NewNull()
	}
	return &Document{root: root}
}

// Decode replaces the document's root with the tree parsed from input.
// On failure the previous root is left untouched.
func (doc *Document) Decode(input []byte) error {
	root, err := Decode(input)
	if err != nil {
		return err
	}
	doc.root = root
	return nil
}

// Encode renders the document's current root per opts.
func (doc *Document) Encode(opts Options) ([]byte, error) {
	return Encode(doc.root, opts)
}

// Root exposes the underlying tree for direct mutation/traversal.
func (doc *Document) Root() *data.DynamicData { return doc.root }

// Empty reports whether the document's root is Null (SPEC_FULL.md §7
// item 1).
func (doc *Document) Empty() bool { return doc.root.IsNull() }
