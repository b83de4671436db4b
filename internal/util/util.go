package util

// GetStr reads a string field from a decoded JSON object, "" when absent.
func GetStr(obj map[string]any, key string) string {
	var res string
	if val, ok := obj[key]; ok && val != nil {
		res, _ = val.(string)
	}
	return res
}

func IfEmptyElse(str string, def string) string {
	if str == "" {
		return def
	}
	return str
}
