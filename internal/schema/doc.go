// Package schema derives JSON Schemas from Go types by reflection and
// validates JSON instances against them. Tool argument shapes and structured
// output contracts are both expressed this way: the raw form travels to the
// provider so the model knows the expected shape, and the compiled form
// checks what actually came back.
package schema
