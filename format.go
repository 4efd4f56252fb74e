package exml

// Format decodes src and re-encodes it in canonical form: layout settings
// first, regions in their fixed order, pages ascending and default attributes
// elided. The options apply to both directions, so StrictValues or
// DisallowUnknownKinds can be combined with Indent.
//
// Formatting is idempotent: Format of its own output returns the same bytes.
func Format(src []byte, opts ...Option) ([]byte, error) {
	doc, err := Unmarshal(src, opts...)
	if err != nil {
		return nil, err
	}
	return Marshal(doc, opts...)
}
