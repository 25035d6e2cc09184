// Package lite provides channel-lifted stages that wrap solo steps for
// concurrent pipelines. It targets simple fan-out/fan-in flows.
//
// Common usage:
// - Run/Turnout: drive an engine over an input channel with N worker lines
// - Validate/Try/Switch/Map/Tee: lift solo steps into engines
// - Finally: map each Result[In] to Out on completion
//
// Failed items pass through later stages untouched. Output order across
// worker lines is not preserved.
package lite
