// Package constraints provides type constraints shared by the parsing packages.
package constraints

// Byteseq is an input accepted by the URI parsers: a string or a byte slice, named or not.
type Byteseq interface {
	~string | ~[]byte
}
