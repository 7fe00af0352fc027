// Package uri splits URI references into the generic components defined by RFC 3986.
//
// A reference is decomposed into an optional scheme, an optional authority,
// a path that is always present (possibly empty), an optional query and an optional fragment:
//
//	<scheme> ":" "//" <authority> <path> "?" <query> "#" <fragment>
//
// Two decomposers with identical results are provided:
//
//   - [Split] applies the regular expression from RFC 3986, appendix B;
//   - [Scan] walks the input once without a regular expression engine.
//
// Decomposition never fails and never validates components.
// Component syntax is checked only by [Components.HasValidScheme].
//
//	c := uri.Split("https://example.com/path?q#top")
//	// c.Scheme = "https", c.Authority = "example.com", c.Path = "/path",
//	// c.Query = "q", c.Fragment = "top"
package uri
