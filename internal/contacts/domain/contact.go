package domain

// Contact is a person known to the register.
type Contact struct {
	id    int
	name  string
	notes *string
}

// NewContact creates a contact carrying notes. Empty notes are allowed here;
// the register applies its own stricter rule when adding contacts.
func NewContact(id int, name, notes string) (Contact, error) {
	c, err := NewContactWithoutNotes(id, name)
	if err != nil {
		return Contact{}, err
	}
	c.notes = &notes
	return c, nil
}

// NewContactWithoutNotes creates a contact whose notes are absent.
func NewContactWithoutNotes(id int, name string) (Contact, error) {
	if id < 1 {
		return Contact{}, ErrInvalidContactID
	}
	if name == "" {
		return Contact{}, ErrEmptyName
	}
	return Contact{id: id, name: name}, nil
}

// RehydrateContact recreates a contact from persisted state.
func RehydrateContact(id int, name string, notes *string) (Contact, error) {
	c, err := NewContactWithoutNotes(id, name)
	if err != nil {
		return Contact{}, err
	}
	if notes != nil {
		n := *notes
		c.notes = &n
	}
	return c, nil
}

// Getters
func (c Contact) ID() int      { return c.id }
func (c Contact) Name() string { return c.name }

// Notes returns the contact notes, or an empty string when none were recorded.
func (c Contact) Notes() string {
	if c.notes == nil {
		return ""
	}
	return *c.notes
}

// HasNotes reports whether notes were recorded, even if empty.
func (c Contact) HasNotes() bool { return c.notes != nil }

// IsZero reports whether c is the zero value, which stands for "no contact".
func (c Contact) IsZero() bool { return c.id == 0 }

// Equals compares identity and content.
func (c Contact) Equals(other Contact) bool {
	return c.id == other.id && c.name == other.name && c.HasNotes() == other.HasNotes() && c.Notes() == other.Notes()
}
