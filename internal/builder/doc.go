/*
Package builder turns a parse tree into a typed draft document. It acts as the
bridge between the syntax-only world of the parser (the 'ast' package) and the
semantic checks of the 'validator' package.

The primary artifact produced by this package is a *Draft.

Building is a single pass over the parse tree:

 1. Section Registration: Each recognized section is recorded once. A second
    occurrence of the same section is an issue and its contents are skipped.
    Unknown sections were already reported by the parser and are ignored.

 2. Property Application: Each property is resolved against the schema
    (following deprecated aliases), coerced to its semantic type and written
    into the draft's Document, which starts out populated with defaults.
    Quantities are converted to SI through the unit table.

 3. Bookkeeping: The draft remembers where every field was set, which paths
    failed coercion, and every particle sizing property seen, so the validator
    can enforce required fields and cross-field rules with precise positions.

Build never fails. Everything it cannot apply becomes a diagnostic on the
draft, and the validator decides what is fatal.
*/
package builder
