package tabular

import "strings"

// splitFields tokenizes a row into comma-separated fields. Fields may be
// "-quoted; inside quotes a comma is literal and a doubled "" is a literal
// quote. Each field is returned trimmed.
func splitFields(row string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(row); i++ {
		c := row[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(row) && row[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	return append(fields, strings.TrimSpace(field.String()))
}
