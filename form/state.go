package form

// State tracks one form session: current values, recorded errors, and
// which fields the user has interacted with. All of it is transient UI
// state, recreated per form session.
type State struct {
	values    map[string]string
	errors    map[string]string
	touched   map[string]bool
	submitted bool
}

// NewState creates empty form state
func NewState() *State {
	return &State{
		values:  make(map[string]string),
		errors:  make(map[string]string),
		touched: make(map[string]bool),
	}
}

// Value returns the current value of a field
func (s *State) Value(name string) string {
	return s.values[name]
}

// SetField records a new value. Once a field has been touched (or a
// submit has happened), every change re-validates just that field so
// its error display stays in sync; untouched fields are left alone.
func (s *State) SetField(name, value string) {
	s.values[name] = value
	if s.touched[name] || s.submitted {
		s.revalidate(name)
	}
}

// Blur marks a field as interacted with and validates it
func (s *State) Blur(name string) {
	s.touched[name] = true
	s.revalidate(name)
}

// TouchAll force-sets every field's touched flag, making all validation
// messages visible. Called on submit.
func (s *State) TouchAll() {
	s.submitted = true
	for _, name := range []string{FieldUsername, FieldPassword} {
		s.touched[name] = true
	}
}

// ValidateAll runs whole-form validation, records the result, and
// returns the failing fields.
func (s *State) ValidateAll() map[string]string {
	s.errors = ValidateForm(s.values)
	return s.errors
}

// Error returns the visible error for a field. An error is only
// surfaced once the field has been touched or a submit has occurred.
func (s *State) Error(name string) string {
	if !s.touched[name] && !s.submitted {
		return ""
	}
	return s.errors[name]
}

// IsValid reports whether the form would pass submission. It is
// conservative: it requires both a clean re-check of the current values
// and no outstanding recorded errors.
func (s *State) IsValid() bool {
	if len(s.errors) != 0 {
		return false
	}
	for _, name := range []string{FieldUsername, FieldPassword} {
		if ValidateField(name, s.values[name]) != "" {
			return false
		}
	}
	return true
}

func (s *State) revalidate(name string) {
	if msg := ValidateField(name, s.values[name]); msg != "" {
		s.errors[name] = msg
	} else {
		delete(s.errors, name)
	}
}
