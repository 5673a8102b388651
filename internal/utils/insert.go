package querybuilder

// InsertRows holds one args tuple per inserted row.
type InsertRows [][]interface{}
