package encode

type EncodeOption func(*EncState)

// Depth sets the indentation depth of the encoded root.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeSpans(v bool) EncodeOption {
	return func(es *EncState) { es.spans = v }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
