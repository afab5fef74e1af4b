package game

// Input holds the signals sampled once per tick by the host.
type Input struct {
	WindActive       bool // wind is held for this tick
	RestartRequested bool // leave Playing and respawn the scene
}
