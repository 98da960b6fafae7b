// Package astjson persists syntax trees as JSON documents.
//
// A document lists the nodes of a tree breadth-first, the root first. Each
// node refers to its children by index, and children always come after
// their parent:
//
//	{"version":1,"nodes":[
//	  {"kind":"comparison","type":">","lexeme":">","line":1,"column":3,"children":[1,2]},
//	  {"kind":"ident","type":"identifier","lexeme":"a","line":1,"column":1,"children":[]},
//	  {"kind":"ident","type":"identifier","lexeme":"b","line":1,"column":5,"children":[]}
//	]}
//
// The flat layout keeps the JSON nesting constant no matter how deep the
// tree is. Documents may be zstd compressed; Unmarshal detects this from the
// frame header.
package astjson

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"

	"github.com/ltungv/dry/internal/ast"
	"github.com/ltungv/dry/internal/token"
)

// Version is the document version written by Marshal.
const Version = 1

var (
	// ErrInvalidDocument is returned for documents that do not describe a
	// tree.
	ErrInvalidDocument = errors.New("invalid tree document")
	// ErrUnknownKind is returned for node types or kinds without a
	// registered builder.
	ErrUnknownKind = errors.New("unknown node kind")
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Builder rebuilds a node of one kind from its token and decoded children.
type Builder func(tok *token.Token, children []ast.Expr) (ast.Expr, error)

// Codec converts trees to and from documents. Node kinds are looked up in a
// registry, so variants defined outside package ast can be persisted once
// they are registered. A codec can be used by multiple goroutines once
// registration is done.
type Codec struct {
	kinds    map[reflect.Type]string
	builders map[string]Builder
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
}

// NewCodec creates a codec that knows every node type of package ast.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, err
	}
	c := &Codec{
		kinds:    make(map[reflect.Type]string),
		builders: make(map[string]Builder),
		encoder:  enc,
		decoder:  dec,
	}
	for _, k := range builtinKinds {
		if err := c.Register(k.kind, k.sample, k.build); err != nil {
			c.Close()
			return nil, err
		}
	}
	return c, nil
}

// Close releases the compression resources of the codec.
func (c *Codec) Close() error {
	c.decoder.Close()
	return c.encoder.Close()
}

// Register associates the dynamic type of sample with kind. Nodes of that
// type are written with the given kind, and build turns the kind back into a
// node. sample may be a typed nil pointer.
func (c *Codec) Register(kind string, sample ast.Expr, build Builder) error {
	if kind == "" || build == nil {
		return fmt.Errorf("register %q: kind and builder are required", kind)
	}
	typ := reflect.TypeOf(sample)
	if typ == nil {
		return fmt.Errorf("register %q: sample has no type", kind)
	}
	if other, ok := c.kinds[typ]; ok {
		return fmt.Errorf("register %q: %s is already registered as %q", kind, typ, other)
	}
	if _, ok := c.builders[kind]; ok {
		return fmt.Errorf("register %q: kind is already registered", kind)
	}
	c.kinds[typ] = kind
	c.builders[kind] = build
	return nil
}

// Kind returns the registered kind of n.
func (c *Codec) Kind(n ast.Node) (string, bool) {
	kind, ok := c.kinds[reflect.TypeOf(n)]
	return kind, ok
}

// Marshal encodes the tree rooted at root.
func (c *Codec) Marshal(root ast.Expr) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root", ErrInvalidDocument)
	}

	var a fastjson.Arena
	nodes := a.NewArray()
	queue := []ast.Node{root}
	for i := 0; i < len(queue); i++ {
		n := queue[i]
		kind, ok := c.Kind(n)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnknownKind, n)
		}
		tok := n.Token()

		children := a.NewArray()
		for j, child := range n.Children() {
			children.SetArrayItem(j, a.NewNumberInt(len(queue)))
			queue = append(queue, child)
		}

		obj := a.NewObject()
		obj.Set("kind", a.NewString(kind))
		obj.Set("type", a.NewString(string(tok.Type())))
		obj.Set("lexeme", a.NewString(tok.Lexeme()))
		obj.Set("line", a.NewNumberInt(tok.Pos().Line))
		obj.Set("column", a.NewNumberInt(tok.Pos().Column))
		obj.Set("children", children)
		nodes.SetArrayItem(i, obj)
	}

	doc := a.NewObject()
	doc.Set("version", a.NewNumberInt(Version))
	doc.Set("nodes", nodes)
	return doc.MarshalTo(nil), nil
}

// MarshalCompressed is like Marshal, but compresses the document with zstd.
func (c *Codec) MarshalCompressed(root ast.Expr) ([]byte, error) {
	data, err := c.Marshal(root)
	if err != nil {
		return nil, err
	}
	return c.encoder.EncodeAll(data, nil), nil
}

// Unmarshal decodes a plain or zstd compressed document.
func (c *Codec) Unmarshal(data []byte) (ast.Expr, error) {
	if IsCompressed(data) {
		plain, err := c.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress tree: %w", err)
		}
		data = plain
	}

	var p fastjson.Parser
	doc, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if v := doc.GetInt("version"); v != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, v)
	}
	nodes := doc.GetArray("nodes")
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidDocument)
	}

	// Children follow their parent, so building from the end sees every
	// child before the node that holds it.
	built := make([]ast.Expr, len(nodes))
	owned := make([]bool, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		n, err := c.decodeNode(nodes, built, owned, i)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		built[i] = n
	}
	for i := 1; i < len(nodes); i++ {
		if !owned[i] {
			return nil, fmt.Errorf("%w: node %d is not reachable from the root", ErrInvalidDocument, i)
		}
	}
	return built[0], nil
}

func (c *Codec) decodeNode(nodes []*fastjson.Value, built []ast.Expr, owned []bool, i int) (ast.Expr, error) {
	v := nodes[i]
	if v.Type() != fastjson.TypeObject {
		return nil, fmt.Errorf("%w: node is not an object", ErrInvalidDocument)
	}
	kind := string(v.GetStringBytes("kind"))
	build, ok := c.builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	tok, err := decodeToken(v)
	if err != nil {
		return nil, err
	}

	var children []ast.Expr
	for _, ref := range v.GetArray("children") {
		j, err := ref.Int()
		if err != nil {
			return nil, fmt.Errorf("%w: child index: %v", ErrInvalidDocument, err)
		}
		if j <= i || j >= len(nodes) {
			return nil, fmt.Errorf("%w: child index %d out of range", ErrInvalidDocument, j)
		}
		if owned[j] {
			return nil, fmt.Errorf("%w: node %d has two parents", ErrInvalidDocument, j)
		}
		owned[j] = true
		children = append(children, built[j])
	}
	return build(tok, children)
}

func decodeToken(v *fastjson.Value) (*token.Token, error) {
	typ := token.Type(v.GetStringBytes("type"))
	if typ == "" {
		return nil, fmt.Errorf("%w: node has no token type", ErrInvalidDocument)
	}
	lexeme := string(v.GetStringBytes("lexeme"))
	literal, err := literalOf(typ, lexeme)
	if err != nil {
		return nil, err
	}
	return token.New(typ, lexeme, literal, v.GetInt("line"), v.GetInt("column")), nil
}

// literalOf recomputes the value the scanner attaches to a literal token.
func literalOf(typ token.Type, lexeme string) (interface{}, error) {
	switch typ {
	case token.NUMBER:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidDocument, lexeme)
		}
		return f, nil
	case token.STRING:
		if len(lexeme) < 2 || lexeme[0] != '"' || lexeme[len(lexeme)-1] != '"' {
			return nil, fmt.Errorf("%w: bad string %q", ErrInvalidDocument, lexeme)
		}
		return lexeme[1 : len(lexeme)-1], nil
	case token.TRUE:
		return true, nil
	case token.FALSE:
		return false, nil
	}
	return nil, nil
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}
