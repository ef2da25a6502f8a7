// Package logger provides structured logging for the gateway toolkit,
// built on zerolog.
//
// Components receive a *Logger and tag their output with WithComponent:
//
//	log := logger.NewDefault("payments-api")
//	log = log.WithComponent("session")
//	log.Debug("session created", logger.Fields(logger.FieldSessionKey, key))
package logger
