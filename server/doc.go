// Package server exposes the pipeline over a small Gin HTTP API:
// transcription jobs, transcript Q&A, and a health endpoint reporting
// sidecar availability. The server is a thin adapter; all behavior
// lives in the pipeline, align and llm packages.
package server
