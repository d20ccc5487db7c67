// Package hmesh is the module root for github.com/sksmith/hmesh.
//
// The implementation lives in the hmesh subpackage, imported as
// github.com/sksmith/hmesh/hmesh; see its package documentation for an
// overview of the half-edge mesh representation and the operations this
// module provides.
package hmesh
