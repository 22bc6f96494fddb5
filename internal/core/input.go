package core

// Input is the flat input snapshot supplied to the simulation once per tick.
// The simulation never polls raw device state; the platform layer translates
// key events into this structure.
//
// Jump, Start and Restart carry edge semantics: true only on the tick the key
// was pressed. Crouch carries level semantics: true for as long as the key is
// held.
type Input struct {
	Jump    bool // Jump requested this tick (rising edge)
	Crouch  bool // Crouch key currently held
	Start   bool // Start requested this tick (menu only)
	Restart bool // Restart requested this tick (game over only)
}
