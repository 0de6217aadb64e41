// Package bootstrap sequences application startup.
//
// The Sequencer walks a fixed state machine:
//
//	idle -> connecting -> seeding (optional) -> routes_mounted -> listening
//
// with failed reachable from connecting, routes_mounted and listening. A seeding
// failure is logged and the sequence continues. Whether seeding runs is decided by
// Config.EnableSeeding; the caller derives it from the environment.
//
// # Usage
//
//	seq := bootstrap.New(bootstrap.Config{EnableSeeding: true, Addr: ":8000"}, bootstrap.Stages{
//	    Connect: connect,
//	    Seed:    seed,
//	    Mount:   mount,
//	    Listen:  app.Listen,
//	}, logger)
//	if err := seq.Run(ctx); err != nil {
//	    return err
//	}
package bootstrap
