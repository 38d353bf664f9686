package utils

import "strings"

// PathSeparator joins city names in a rendered path.
const PathSeparator = " -> "

// FormatCities renders a city sequence.
// Example: ["Dallas", "Austin", "Houston"] -> "Dallas -> Austin -> Houston"
func FormatCities(cities []string) string {
	return strings.Join(cities, PathSeparator)
}

// SplitRecord splits a pipe delimited record and trims each field.
// Example: "Dallas| Houston |101|51" -> ["Dallas", "Houston", "101", "51"]
func SplitRecord(line string) []string {
	fields := strings.Split(line, "|")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}
