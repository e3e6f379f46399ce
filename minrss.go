// Package minrss builds well-formed RSS 2.0 documents from structured
// inputs. Each builder validates its required fields and returns an opaque
// element handle; handles are composed bottom-up (leaf elements into items,
// items into the feed) and the final rss root is handed to a Tree backend
// for serialization. The package never serializes anything itself.
package minrss

import "fmt"

// Node is an opaque handle to an element created by a Tree backend.
// A node belongs to the backend that created it and must not be passed
// to a different backend, nor appended under two parents.
type Node any

// Attr is a single element attribute. Order is significant and preserved.
type Attr struct {
	Name  string
	Value string
}

// Tree is the minimal element construction capability the builders need.
// Implementations mutate the parent handle in place on AppendChild and do
// no validation of their own.
type Tree interface {
	CreateElement(tag string, attrs ...Attr) Node
	AppendChild(parent, child Node)
	SetText(n Node, text string)
}

// ValidationError reports a violated RSS 2.0 field requirement. It is the
// only error kind the builders return; callers should treat it as a bug in
// the input, not a transient condition.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// field is an ordered (tag name, text value) pair. Each builder declares
// its own emission list so child order stays explicit and deterministic.
type field struct {
	name  string
	value string
}

// requireAll fails on the first empty required field.
func requireAll(element string, fields []field) error {
	for _, f := range fields {
		if f.value == "" {
			return validationErrorf("%s: %s is required", element, f.name)
		}
	}
	return nil
}

// Generator builds RSS elements on top of a single Tree backend. All
// elements composed into one document must come from the same Generator
// or at least share its backend. A Generator holds no mutable state and
// is safe for concurrent use as long as element handles are not shared
// across builds.
type Generator struct {
	tree Tree
}

// New returns a Generator bound to the given tree backend.
func New(t Tree) *Generator {
	return &Generator{tree: t}
}

func (g *Generator) addTextChild(parent Node, tag, text string) Node {
	child := g.tree.CreateElement(tag)
	g.tree.SetText(child, text)
	g.tree.AppendChild(parent, child)

	return child
}

// addTextFields emits one text child per non-empty field, in list order.
func (g *Generator) addTextFields(parent Node, fields []field) {
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		g.addTextChild(parent, f.name, f.value)
	}
}
