/*
Package fileio saves and loads structured data as JSON, CSV, YAML and TOML
files, and creates directories.

Every function takes the file path first, as os.WriteFile does. Writes encode
the whole value in memory before touching the filesystem, so a value that cannot
be encoded never truncates an existing file. Files are written with mode 0644
and no temporary files are left behind. Handles are released before returning
on every path.

Failures wrap the sentinels from pkg/domain:

  - domain.ErrNotFound: the file to load does not exist.
  - domain.ErrMalformedData: the file exists but does not parse.
  - domain.ErrInvalidArgument: the value to save cannot be encoded in the format.
  - domain.ErrIOFailure: anything the filesystem refuses.

Concurrent calls on distinct paths are safe. Callers serialize calls that target
the same path.
*/
package fileio
