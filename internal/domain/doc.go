// Package domain defines the data model shared across the app: key and seed
// types, and the parameter sets both peers must agree on out of band. It
// contains plain types and small derivations only.
package domain
