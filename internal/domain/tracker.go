package domain

// FieldTracker records which required update fields have been collected.
// The zero value is not usable; create one with NewFieldTracker.
type FieldTracker struct {
	known map[FieldName]bool
}

// NewFieldTracker creates a tracker with all required fields unknown.
func NewFieldTracker() *FieldTracker {
	return &FieldTracker{known: make(map[FieldName]bool, len(RequiredFields))}
}

// MarkKnown records that a field has been collected. Marking a field twice
// is a no-op; names outside the required set are ignored.
func (t *FieldTracker) MarkKnown(field FieldName) {
	if !IsRequiredField(field) {
		return
	}
	t.known[field] = true
}

// IsKnown reports whether the given field has been collected.
func (t *FieldTracker) IsKnown(field FieldName) bool {
	return t.known[field]
}

// IsComplete reports whether every required field has been collected.
// Phase is not part of this check.
func (t *FieldTracker) IsComplete() bool {
	for _, f := range RequiredFields {
		if !t.known[f] {
			return false
		}
	}
	return true
}

// MissingFields returns the uncollected fields in declaration order,
// regardless of the order in which the others were satisfied.
func (t *FieldTracker) MissingFields() []FieldName {
	var missing []FieldName
	for _, f := range RequiredFields {
		if !t.known[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
