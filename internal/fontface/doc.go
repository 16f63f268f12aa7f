// Package fontface turns search results into font-face rules and renderable
// font resources.
//
// The Registry is the explicit set of font names already injected for the
// lifetime of a view: rules accumulate and are never removed. Rule text is
// built structurally with every interpolated value escaped, so a hostile
// backend cannot break out of the declaration. The Loader fetches the
// resource behind a rule once per family.
package fontface
