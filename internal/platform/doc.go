// Package platform contains OS integration and network glue around the core:
// filesystem helpers, URL canonicalisation, thumbnail fetching, playlist
// expansion and revealing downloaded files in the system file manager.
package platform
