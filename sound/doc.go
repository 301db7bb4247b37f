// SPDX-License-Identifier: EPL-2.0

// Package sound plays short clips and keeps track of the voices they start.
//
// A Clip is a loaded sound with a title and a known duration. Player starts
// clips as Instances, addressed by the backend's audio.Handle, and counts
// their time down in Update so it knows when a one-shot voice is over. Loop
// chains an intro, a looping body and an outro on top of a Player.
package sound
