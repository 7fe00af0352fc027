// Package reluri tells relative URI references apart from absolute URIs.
//
// A value is a relative URI reference when it is a string made only of RFC 3986
// characters, carries only well-formed percent-escapes and has no valid scheme:
//
//	reluri.IsRelativeURI("./beep/boop")           // true
//	reluri.IsRelativeURI("/dashboard/admin")      // true
//	reluri.IsRelativeURI("https://wikipedia.org") // false
//	reluri.IsRelativeURI("mailto:foo@bar.com")    // false
//	reluri.IsRelativeURI("foo bar")               // false, illegal character
//	reluri.IsRelativeURI(nil)                     // false, not a string
//
// A reference with a valid scheme, an empty authority and a path starting with "//"
// (for example "http:////x") is reported as relative too, see [KindNetworkPath].
//
// [IsRelativeURI] never panics and accepts values of any type.
// [Classify] returns the full [Result] including the decomposed components
// and the reason an input was rejected.
//
// # Customization
//
// A [Classifier] controls which values count as strings ([TypeGuard]),
// how references are decomposed and where decisions are logged.
// Its zero value is ready to use and behaves like the package level functions.
//
//	c := &reluri.Classifier{
//	    Guard:  reluri.LenientStringGuard,
//	    Logger: slog.Default(),
//	}
//	c.IsRelativeURI([]byte("../up")) // true
//
// # Thread Safety
//
// All functions are safe for concurrent use.
// A [Classifier] must not be modified while it is in use.
package reluri
