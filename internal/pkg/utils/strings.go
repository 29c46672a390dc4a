package utils

// Truncate обрезает строку до max символов (рун), не разрывая UTF-8
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
