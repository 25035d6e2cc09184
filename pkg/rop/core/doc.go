// Package core contains pipeline plumbing: channel helpers, worker
// configuration carried in the context, and the locomotive loop that drives a
// stage. It holds no business logic; lite builds its stages on top of it.
package core
