// Package diarization defines the provider interface and data contract
// for speaker diarization backends.
//
// A diarization run partitions an audio timeline into speaker turns.
// Turns are sorted by start time; turns for the same speaker never
// overlap, but turns from different speakers may (simultaneous speech),
// and consumers must not assume otherwise.
//
// # Backends
//
//   - diarization/pyannote: Pyannote-based speaker diarization sidecar
//
// # Usage
//
//	reg := diarization.NewRegistry()
//	reg.RegisterFactory(pyannote.ProviderName, pyannote.Factory())
//	p, err := reg.Create("pyannote", cfg)
//	result, err := p.Diarize(ctx, req)
package diarization
