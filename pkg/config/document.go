package config

import (
	"errors"
	"os"
	"strings"

	"github.com/beevik/etree"
)

// Property is one named configurable setting and its current value. Index is
// the position of the property within the document, preserved across
// load/serialize round trips.
type Property struct {
	Name  string
	Value string
	Index int
}

// Document is the in-memory representation of one loaded serverconfig.xml.
// It owns the underlying XML tree, so serializing writes back the original
// structure (comments, unknown elements, attributes) untouched apart from
// edited property values.
type Document struct {
	// Path is the file this document was loaded from and will be saved to.
	Path string

	// Repaired reports that the initial parse failed and the document was
	// only readable after the encoding repair pass.
	Repaired bool

	tree     *etree.Document
	order    []string
	elems    map[string]*etree.Element
	comments map[string]string
	dirty    bool
	watchers map[string][]func(value string)
}

// Load reads and parses the config file at path. A parse failure triggers a
// single encoding repair pass and one retry; if the retry also fails the
// original parse error is surfaced.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	doc, parseErr := parse(raw)
	repaired := false
	if parseErr != nil {
		fixed := RepairEncoding(raw)
		if repairedDoc, retryErr := parse(fixed); retryErr == nil {
			doc = repairedDoc
			repaired = true
		} else {
			return nil, &ParseError{Path: path, Err: parseErr}
		}
	}

	d := &Document{
		Path:     path,
		Repaired: repaired,
		tree:     doc,
		elems:    make(map[string]*etree.Element),
		comments: make(map[string]string),
		watchers: make(map[string][]func(string)),
	}
	d.scan()
	return d, nil
}

func parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errMissingRoot
	}
	return doc, nil
}

var errMissingRoot = errors.New("document has no root element")

// scan walks the root's children once in document order, collecting property
// elements and pairing each comment with the property element that follows
// it. A comment not followed by a property is discarded.
func (d *Document) scan() {
	pendingComment := ""
	for _, tok := range d.tree.Root().Child {
		switch t := tok.(type) {
		case *etree.Comment:
			pendingComment = normalizeComment(t.Data)
		case *etree.Element:
			if t.Tag == "property" {
				name := t.SelectAttrValue("name", "")
				if name != "" {
					if _, dup := d.elems[name]; !dup {
						d.elems[name] = t
						d.order = append(d.order, name)
						if pendingComment != "" {
							d.comments[name] = pendingComment
						}
					}
				}
			}
			pendingComment = ""
		case *etree.CharData:
			// Whitespace between a comment and its property keeps the
			// association alive.
		default:
			pendingComment = ""
		}
	}
}

func normalizeComment(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Properties returns the document's properties in document order.
func (d *Document) Properties() []Property {
	props := make([]Property, 0, len(d.order))
	for i, name := range d.order {
		props = append(props, Property{
			Name:  name,
			Value: d.elems[name].SelectAttrValue("value", ""),
			Index: i,
		})
	}
	return props
}

// Len returns the number of properties in the document.
func (d *Document) Len() int {
	return len(d.order)
}

// Get returns the current value of the named property.
func (d *Document) Get(name string) (string, error) {
	elem, ok := d.elems[name]
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return elem.SelectAttrValue("value", ""), nil
}

// Set updates the named property's value and marks the document dirty. A
// property not present in the file is appended to the root, mirroring how
// the server itself treats missing entries.
func (d *Document) Set(name, value string) {
	elem, ok := d.elems[name]
	if !ok {
		elem = d.tree.Root().CreateElement("property")
		elem.CreateAttr("name", name)
		d.elems[name] = elem
		d.order = append(d.order, name)
	}
	elem.CreateAttr("value", value)
	d.dirty = true
	for _, fn := range d.watchers[name] {
		fn(value)
	}
}

// Description returns the comment-derived description for name, extracted
// from the loaded file. The second return is false when the file carried no
// comment for the property.
func (d *Document) Description(name string) (string, bool) {
	desc, ok := d.comments[name]
	return desc, ok
}

// IsDirty reports whether the document has unsaved edits.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// Watch registers fn to be called with the new value whenever the named
// property changes. Dispatch is a flat by-name table; there is no
// unsubscribe because watchers live exactly as long as the document.
func (d *Document) Watch(name string, fn func(value string)) {
	d.watchers[name] = append(d.watchers[name], fn)
}

// Serialize renders the document back to XML bytes, preserving original
// ordering and all non-property structure.
func (d *Document) Serialize() ([]byte, error) {
	return d.tree.WriteToBytes()
}

// Reload discards this document's in-memory state and loads a fresh one from
// the same path. Callers are responsible for confirming the discard of dirty
// edits first; Reload itself never prompts.
func (d *Document) Reload() (*Document, error) {
	return Load(d.Path)
}
