package cdk

import "fmt"

// Kind tags the widget variant a capability belongs to.
type Kind int

const (
	KindNone Kind = iota
	KindLabel
	KindButton
	KindEntry
	KindAlphaList
	KindCalendar
)

var kindNames = [...]string{
	KindNone:      "none",
	KindLabel:     "label",
	KindButton:    "button",
	KindEntry:     "entry",
	KindAlphaList: "alphalist",
	KindCalendar:  "calendar",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Interactive reports whether widgets of this kind can be activated.
func (k Kind) Interactive() bool {
	switch k {
	case KindButton, KindEntry, KindAlphaList, KindCalendar:
		return true
	default:
		return false
	}
}

// Resource is an opaque handle to a rendering object owned by a Session.
// The zero value is the null handle.
type Resource uint64

// NoResource is the null handle.
const NoResource Resource = 0

// Capability is the type-erased view of a widget the Canvas registry works
// with: a kind tag plus the widget's resource handle. The zero value is the
// unconfigured sentinel (KindNone, NoResource).
type Capability struct {
	kind Kind
	res  Resource
}

func newCapability(kind Kind, res Resource) Capability {
	if kind == KindNone || res == NoResource {
		return Capability{}
	}
	return Capability{kind: kind, res: res}
}

// Kind returns the variant tag.
func (c Capability) Kind() Kind { return c.kind }

// Resource returns the resource handle, NoResource when unconfigured.
func (c Capability) Resource() Resource { return c.res }

// Configured reports whether the capability holds a live handle.
func (c Capability) Configured() bool {
	return c.kind != KindNone && c.res != NoResource
}

func (c Capability) String() string {
	if !c.Configured() {
		return "none"
	}
	return fmt.Sprintf("%s#%d", c.kind, c.res)
}

// Widget is implemented by the widget variants of this package only. The
// unexported frame method closes the set, so the registry can hold any
// variant without knowing its concrete type.
type Widget interface {
	Capability() Capability
	frame() Frame
	owner() *Canvas
}
