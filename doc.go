// Package alignment converts the geometry records of road and rail
// alignments, as exported by a civil engineering data store, into a
// normalized, strongly typed curve model, and places points of interest
// on the resulting curves.
//
// # Source records
//
// The package doesn't know the concrete types of the store it reads from.
// Records are passed as values of type any, and their attributes are read
// by name with [Lookup] and [Extract]. Lookups are case-insensitive and
// work on maps with string keys, exported struct fields, exported
// zero-argument methods, and any record implementing [FieldSource].
//
// Different parts of a store expose overlapping but not identical sets of
// fields, so reading a field never fails. A field that is absent, has the
// wrong shape, or panics while being read yields a documented default
// instead: NaN for numbers, false for flags, -1 for entity ids, and the
// empty string or [NoType] for text. Points that can't be resolved are
// reported as absent by their accessors, never as the origin.
//
// The kind of a record is given by the Go interfaces it implements, such
// as [ArcEntity] or [CCRCEntity]. Compound kinds expose their nested
// records through named accessors.
//
// # Curves
//
// [Classify] and [ClassifyAll] build a [Curve] per record. Curve is a
// tagged union over 13 kinds:
//   - [Line]
//   - [Arc]
//   - [Spiral]
//   - [MultipleSegments]
//   - [SCS], [SCSCS], [SCSSCS], and [SSCSS]
//   - [CCRC] and [CRC]
//   - [CTC] and [STS]
//   - [Generic], for records of any other kind
//
// All kinds embed [Entity], which holds the common attributes. Compound
// kinds own their sub-curves, which are built from the nested records. A
// nested record that is missing or can't be built leaves its slot nil but
// doesn't affect the rest of the compound curve.
//
// Sub-curves don't have an entity id, neighbors, a design speed, or a
// sub-entity count. Reading those from a sub-curve returns an error
// wrapping [ErrSubEntity].
//
// With one exception, values are taken from the store as they are; the
// package doesn't compute curve geometry. The exception is [Line], whose
// length is always the distance between its end points.
//
// # Stations
//
// [AssignPIPoints] takes an alignment's curves and the geometry point
// stations reported by the store, and returns the points of intersection
// of the curves, in curve order. Stations are first corrected with a
// [StationOffsetter] to account for station equations.
//
// # Concurrency
//
// Classification and station projection are synchronous and don't perform
// any I/O. Curves are never modified after construction and can be read
// from multiple goroutines.
package alignment
