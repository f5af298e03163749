package model

import "strings"

// NavItem is a header navigation entry. Items with SubItems open a dropdown.
type NavItem struct {
	Name     string
	Path     string
	SubItems []NavItem
}

// HasSubItems reports whether the item reveals a dropdown/submenu.
func (n NavItem) HasSubItems() bool {
	return len(n.SubItems) > 0
}

// NavigationState is the header chrome state. Empty strings mean "none".
type NavigationState struct {
	ActiveDropdown        string
	MenuOpen              bool
	ExpandedMobileSubmenu string
	Scrolled              bool
}

// Product is a single card inside a carousel category.
type Product struct {
	Name  string
	Specs []string
	Image string
}

// Category is one carousel slide.
type Category struct {
	ID          int
	Label       string
	Description string
	Products    []Product
}

// Direction records the last carousel transition. It only selects the animation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// CarouselState is a snapshot of the carousel controller.
type CarouselState struct {
	Index     int
	Direction Direction
}

// Contact form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// ContactFieldNames lists the form fields in display order.
var ContactFieldNames = []string{FieldName, FieldEmail, FieldMessage}

// ContactFields holds the raw values typed into the contact form.
type ContactFields struct {
	Name    string
	Email   string
	Message string
}

// Get returns the value for the named field, or "" for unknown names.
func (f ContactFields) Get(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// Set overwrites the named field. Unknown names are ignored.
func (f *ContactFields) Set(name, value string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
}

// FieldErrors maps a failing field name to its message. Passing fields are absent.
type FieldErrors map[string]string

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// FormStatus is the submission lifecycle of the contact form.
type FormStatus int

const (
	StatusIdle FormStatus = iota
	StatusSubmitting
	StatusSuccess
)

func (s FormStatus) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	default:
		return "idle"
	}
}

// ContactState is a snapshot of the contact form controller.
type ContactState struct {
	Fields ContactFields
	Errors FieldErrors
	Status FormStatus
}

// Submission is the payload handed to the form relay.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// FooterLinkGroup is a titled column of footer links.
type FooterLinkGroup struct {
	Title string
	Links []NavItem
}

// ContactDetail is a labelled company contact line (email, phone, address, hours).
type ContactDetail struct {
	Label string
	Value string
	Href  string
}
