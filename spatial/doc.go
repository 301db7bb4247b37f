// SPDX-License-Identifier: EPL-2.0

// Package spatial plays sounds placed in a world and keeps their pan and
// volume in line with where they are relative to a listener.
//
// Player is generic over the position type. Each played sound becomes an
// Instance addressed by the backend handle; a Spatializer maps the
// instance's position to pan and volume on every Update. Planar is a
// ready-made spatializer for 2D worlds seen from a listener above the
// plane.
//
// # Fading
//
// With a fade time set, Stop and Pause ramp the volume down before acting,
// Resume ramps it back up, and Play can start silent and fade in. A fading
// instance owns its volume: the spatializer leaves it alone until the fade
// is over.
//
// # Handles
//
// Stop, Pause and Resume ignore handles that are no longer live. Instances
// are pooled, so a pointer obtained from Instance must not be kept once its
// sound is over.
package spatial
