// Package physics simulates the projects pane node graph.
//
// Nodes are circles in a fixed arena. Each frame nudges every node with a
// small random acceleration, damps and clamps its speed, moves it, reflects
// it off the walls and finally resolves overlapping pairs with an impulse
// along the contact normal:
//
//	v += (U-0.5)*accel + (U-0.5)*jitter
//	v *= damping
//	|v| <= maxSpeed
//	x += v
//
// Nodes can be grabbed and thrown with a pointer. A short press without
// movement counts as a click and opens the node's link through an [Opener].
// [Loop] drives frames from the Bubble Tea update loop and can be paused,
// resumed and torn down as the pane's visibility changes.
package physics
