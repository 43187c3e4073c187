package bitfield

// FieldView is the (name, kind, width, accessor) tuple the annotated
// formatter walks. It is a rendering of one Field at its current width,
// recomputed on every call since an optional or byte-string field's width
// can change between calls.
type FieldView struct {
	Name  string
	Kind  Kind
	Width int
	Field Field
}

// Fields returns g's schema as the (name, kind, width, accessor) tuples
// the formatter drives off of.
func Fields(g Group) []FieldView {
	schema := g.Schema()
	views := make([]FieldView, len(schema))
	for i, f := range schema {
		views[i] = FieldView{Name: f.Name, Kind: f.Kind, Width: Width(f), Field: f}
	}
	return views
}
