package models

// FieldSet lists the JSON field names of an entity that are stored only in
// encrypted form.
type FieldSet []string

// EncryptedFields is the static table of sensitive fields per entity kind.
// It is defined once and never mutated at runtime.
//
// The planner's nested content tree is not listed here: block, list item and
// sub-item texts are walked by the codec's content methods.
var EncryptedFields = struct {
	Todo     FieldSet
	Journal  FieldSet
	Planner  FieldSet
	UserData FieldSet
}{
	Todo:     FieldSet{"title", "category"},
	Journal:  FieldSet{"content"},
	Planner:  FieldSet{"title", "description"},
	UserData: FieldSet{"displayName", "goal"},
}
