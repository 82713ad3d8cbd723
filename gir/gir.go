// Package gir describes the introspected API tree that girlint checks.
//
// The model mirrors the subset of a GObject-Introspection repository that the
// rule sets read. It is decoded once and treated as read-only afterwards.
package gir

import "encoding/xml"

// SourcePosition points into the C sources an entity was introspected from.
// Fields are kept verbatim and are never parsed.
type SourcePosition struct {
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr"`
}

// Doc is an entity docstring.
type Doc struct {
	Text     string `xml:",chardata"`
	Filename string `xml:"filename,attr"`
	Line     string `xml:"line,attr"`
}

// Documentable is implemented by every entity that may carry a docstring.
type Documentable interface {
	Documentation() *Doc
	SourcePosition() *SourcePosition
}

// Info holds the fields shared by all entities.
type Info struct {
	Doc        *Doc            `xml:"doc"`
	Position   *SourcePosition `xml:"source-position"`
	Deprecated Bool            `xml:"deprecated,attr"`
}

// Documentation returns the docstring or nil when the entity has none.
func (i *Info) Documentation() *Doc { return i.Doc }

// SourcePosition returns the entity location or nil when it is unknown.
func (i *Info) SourcePosition() *SourcePosition { return i.Position }

// IsDeprecated reports whether the entity is marked deprecated.
func (i *Info) IsDeprecated() bool { return bool(i.Deprecated) }

// Repository is the root of a decoded GIR document.
type Repository struct {
	Version    string      `xml:"version,attr"`
	Namespaces []Namespace `xml:"namespace"`
}

// Namespace returns the first namespace of the repository.
// GIR files produced by g-ir-scanner declare exactly one.
func (r *Repository) Namespace() *Namespace {
	if len(r.Namespaces) == 0 {
		return nil
	}
	return &r.Namespaces[0]
}

type Namespace struct {
	Name    string  `xml:"name,attr"`
	Version string  `xml:"version,attr"`
	Classes []Class `xml:"class"`
}

type Class struct {
	Info
	Name       string     `xml:"name,attr"`
	CType      string     `xml:"type,attr"`
	Parent     string     `xml:"parent,attr"`
	Properties []Property `xml:"property"`
	Methods    []Method   `xml:"method"`
}

// MethodIndex maps a method name to the first method of a class with
// that name.
type MethodIndex map[string]*Method

// MethodIndex builds a name lookup over the class methods.
func (c *Class) MethodIndex() MethodIndex {
	idx := make(MethodIndex, len(c.Methods))
	for i := range c.Methods {
		m := &c.Methods[i]
		if _, ok := idx[m.Name]; !ok {
			idx[m.Name] = m
		}
	}
	return idx
}

type Method struct {
	Info
	Name        string `xml:"name,attr"`
	CIdentifier string `xml:"identifier,attr"`
	FinishFunc  string `xml:"finish-func,attr"`
	GetProperty string `xml:"get-property,attr"`
	SetProperty string `xml:"set-property,attr"`

	// Parameters lists the method arguments, without the instance parameter.
	Parameters        []Parameter `xml:"-"`
	InstanceParameter *Parameter  `xml:"-"`
}

// UnmarshalXML flattens the <parameters> wrapper element.
func (m *Method) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	type plain Method
	var raw struct {
		plain
		Params struct {
			Instance *Parameter  `xml:"instance-parameter"`
			List     []Parameter `xml:"parameter"`
		} `xml:"parameters"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	*m = Method(raw.plain)
	m.Parameters = raw.Params.List
	m.InstanceParameter = raw.Params.Instance
	return nil
}

type Parameter struct {
	Info
	Name    string `xml:"name,attr"`
	Scope   Scope  `xml:"scope,attr"`
	Closure *int   `xml:"closure,attr"`
	Destroy *int   `xml:"destroy,attr"`
}

type Property struct {
	Info
	Name          string `xml:"name,attr"`
	Readable      *Bool  `xml:"readable,attr"`
	Writable      Bool   `xml:"writable,attr"`
	ConstructOnly Bool   `xml:"construct-only,attr"`
	Getter        string `xml:"getter,attr"`
	Setter        string `xml:"setter,attr"`
}

// IsReadable reports whether the property can be read.
// Properties are readable unless stated otherwise.
func (p *Property) IsReadable() bool {
	return p.Readable == nil || bool(*p.Readable)
}

func (p *Property) IsWritable() bool { return bool(p.Writable) }

func (p *Property) IsConstructOnly() bool { return bool(p.ConstructOnly) }
