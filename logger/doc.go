// Package logger provides structured logging for the transcription
// pipeline using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.NewDefault("yat").WithComponent("aligner")
//	log.Info("alignment complete", logger.Fields("utterances", 12))
package logger
