// Package log provides the leveled logging interface used across spflow.
//
// The package exposes a small Logger interface with Debug/Info/Warn/Error
// methods and a package-level default implementation backed by
// github.com/kataras/golog. Components log through the package-level helpers
// so embedders can swap the backend with SetDefaultLogger without threading a
// logger through every constructor.
//
//	log.SetLevel(log.LevelDebug)
//	log.Info("loaded %d samples", n)
//
// NoOpLogger silences all output, which is the usual choice in tests.
package log
