package xmp

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

const indentSpaces = 2

// Marshal serializes the tree as an indented, newline-terminated document
// preceded by an XML declaration.
func Marshal(root *Element) ([]byte, error) {
	b, err := document(root).WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", root.Name, err)
	}
	return b, nil
}

// Encode writes the serialized tree to w.
func Encode(w io.Writer, root *Element) error {
	if _, err := document(root).WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", root.Name, err)
	}
	return nil
}

func document(root *Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	build(&doc.Element, root)
	doc.Indent(indentSpaces)
	return doc
}

func build(parent *etree.Element, e *Element) {
	el := parent.CreateElement(e.Name)
	for _, a := range e.Attrs {
		el.CreateAttr(a.Name, a.Value)
	}
	if e.Text != "" {
		el.SetText(e.Text)
	}
	for _, c := range e.Children {
		build(el, c)
	}
}
