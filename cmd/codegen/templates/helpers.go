package templates

import (
	"strconv"
	"strings"
)

func prefixedList(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(count int) string  { return prefixedList("T", count) }
func argNames(count int) string    { return prefixedList("a", count) }
func handleNames(count int) string { return prefixedList("s", count) }

func handleParams(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" Handle")
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func absentGuard(count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString("!ok")
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(" || ")
		}
	}
	return sb.String()
}
