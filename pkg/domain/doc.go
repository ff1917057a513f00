/*
Package domain contains the error taxonomy shared by every utilkit package.

Operations never return these sentinels bare: they wrap them with the argument or
path that caused the failure, and usually with the underlying cause as well. Use
errors.Is to classify a failure.

# Errors

  - ErrInvalidArgument: input rejected before any work is done.
  - ErrNotFound: a load operation targeted a missing file.
  - ErrMalformedData: a file exists but is not valid JSON, CSV, YAML or TOML of the expected shape.
  - ErrIOFailure: the filesystem refused the operation (permissions, disk full, path collisions).
*/
package domain
