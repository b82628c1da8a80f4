package utils

// handle 字符集：小写字母、数字、下划线
func IsValidHandleChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
