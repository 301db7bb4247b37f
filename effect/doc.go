// SPDX-License-Identifier: EPL-2.0

// Package effect implements time-based volume effects driven by the
// playback position of the track they are attached to.
//
// An effect is attached to a Target (usually a music.Track), then updated
// once per tick with the target's position in seconds. Update reports
// completion; after completing, every further Update returns true without
// touching the target until Restart is called.
//
// # Fades
//
// FadeIn ramps the target from silence up to the volume it had when the
// fade began, and snaps back to exactly that volume on completion:
//
//	fade := effect.NewFadeIn(2, utils.Smooth)
//	track.AddEffect(fade)
//
// FadeOut waits for the last Duration seconds of the target and ramps its
// volume down to zero. Stop(position) starts the ramp early, from whatever
// volume the target has at that moment.
//
// # Pooling
//
// NewFadeIn and NewFadeOut draw from DefaultPools. A pooled effect goes back
// to its pool when it is detached from its target; Update holds the release
// back while it runs, so an effect is never recycled mid-update.
package effect
