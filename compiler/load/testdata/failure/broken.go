package failure

// Broken references an undefined name so the package cannot type-check.
var Broken = undefinedIdentifier
