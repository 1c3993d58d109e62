// Package player shows rendered frame text in a terminal at a fixed pace.
//
// [Player.Play] hides the cursor, then for every frame moves the cursor to
// the top-left cell, writes the frame over the previous one and sleeps for
// the frame delay. The screen is never cleared, so every frame must cover the
// same grid. Frames are never dropped: when writing falls behind, playback
// simply takes longer.
//
// The cursor is shown again when playback ends, including after a failed
// write.
package player
