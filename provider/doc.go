// Package provider defines the pluggable backend pattern shared by the
// diarization, transcription and llm packages.
//
// A backend implements its domain interface (which embeds Provider) and
// registers a Factory under a name. Callers create instances through the
// generic Registry, keeping model/backend selection a pure configuration
// concern.
package provider
