package forms

import "github.com/google/uuid"

// DateLayout is the storage form of date-field bounds and defaults.
const DateLayout = "2006-01-02"

// FormSchema is the complete definition of a form: ordered pages, one layout
// and the shuffle flag.
type FormSchema struct {
	Pages            []*FormPage
	Layout           FormLayout
	IsShuffleEnabled bool
}

// FormPage is an ordered group of fields.
type FormPage struct {
	ID     string
	Title  string
	Fields []Field
	Order  int
}

// FormLayout is the presentation bag attached to a schema. The core carries
// it verbatim; rendering semantics live outside.
type FormLayout struct {
	Theme           string
	TextColor       string
	Spacing         string
	Code            string
	Content         string
	BackgroundImage string
	PageMode        string
}

// NewPage builds an empty page with a fresh id.
func NewPage(title string, order int) *FormPage {
	return &FormPage{ID: uuid.NewString(), Title: title, Order: order}
}

// Constructors for seed data and builder use. Each mints a fresh id; callers
// that reconstruct persisted fields go through the codec instead.

func NewTextInputField(label string) *TextInputField {
	return &TextInputField{FillableField: newFillable(label)}
}

func NewTextAreaField(label string) *TextAreaField {
	return &TextAreaField{FillableField: newFillable(label)}
}

func NewEmailField(label string) *EmailField {
	return &EmailField{FillableField: newFillable(label)}
}

func NewNumberField(label string) *NumberField {
	return &NumberField{FillableField: newFillable(label)}
}

func NewSelectField(label string, options []string, multiple bool) *SelectField {
	return &SelectField{FillableField: newFillable(label), Options: options, Multiple: multiple}
}

func NewRadioField(label string, options []string) *RadioField {
	return &RadioField{FillableField: newFillable(label), Options: options}
}

func NewCheckboxField(label string, options []string) *CheckboxField {
	return &CheckboxField{FillableField: newFillable(label), Options: options}
}

func NewDateField(label string) *DateField {
	return &DateField{FillableField: newFillable(label)}
}

func NewRichTextField(content string) *RichTextField {
	return &RichTextField{BaseField: BaseField{ID: uuid.NewString()}, Content: content}
}

func newFillable(label string) FillableField {
	return FillableField{BaseField: BaseField{ID: uuid.NewString()}, Label: label}
}

// FieldByID looks a field up across every page.
func (s *FormSchema) FieldByID(id string) (Field, bool) {
	for _, p := range s.Pages {
		for _, f := range p.Fields {
			if f.FieldID() == id {
				return f, true
			}
		}
	}
	return nil, false
}
