// Package essay defines the essay document (title, global settings, ordered
// sections, scoring) and its JSON and YAML encodings.
//
// Decoding fills every absent field with its default and never yields a
// document without sections. Encoding canonicalizes section content to full
// width and omits metadata blocks whose fields are all unset.
package essay
