package gemini

var (
	stringType = map[string]any{"type": "STRING"}
	numberType = map[string]any{"type": "NUMBER"}
)

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func objectOf(properties map[string]any) map[string]any {
	return map[string]any{"type": "OBJECT", "properties": properties}
}
