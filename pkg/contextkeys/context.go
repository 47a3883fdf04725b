package contextkeys

// contextKey is unexported so keys defined here cannot collide with
// values other packages put in the context.
type contextKey string

// DBContextKey is the key the gorm handle is stored under.
const DBContextKey = contextKey("db")
