package payer

// DefaultNames is the registry used when nothing has been persisted yet or
// the stored value cannot be read.
var DefaultNames = []string{"John", "Mary", "Peter", "Amy"}
