// Package logger provides structured logging for restkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
//	log := logger.Get("rest")
//	log.Info("request sent", logger.Fields("url", url, "status", 200))
package logger
