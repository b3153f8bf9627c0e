// Package server implements the MCP (Model Context Protocol) surface of the
// transform tools.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// It answers initialize, tools/list, tools/call, and ping; everything else
// is a method-not-found error. Tool calls load their input image through a
// shared raster.ImageCache, run the requested transformation, and return the
// result as a base64-encoded PNG payload, optionally also writing it to disk
// when the call names a save_path.
//
// Logging goes to stderr; stdout carries protocol traffic only.
package server
