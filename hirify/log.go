package hirify

import goerrors "gopkg.in/src-d/go-errors.v1"

// ErrPathSegmentMustLocateFirstPosition is logged (not fatal) when the
// reserved segments "hako" or "self" appear anywhere but the first
// position of a use-declaration path.
var ErrPathSegmentMustLocateFirstPosition = goerrors.NewKind("path segment %q must be located in the first position")

// ErrSelfArgumentMustLocateFirstPosition is logged (not fatal) when a
// formal argument named "self" appears anywhere but index 0.
var ErrSelfArgumentMustLocateFirstPosition = goerrors.NewKind("a self argument must be located in the first position")
