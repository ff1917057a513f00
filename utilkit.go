package utilkit

// Version is the release of the library, reported by the CLI and the MCP server.
const Version = "1.0.0"
