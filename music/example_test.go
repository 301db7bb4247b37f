// SPDX-License-Identifier: EPL-2.0

package music_test

import (
	"fmt"

	"github.com/ik5/audsfx/audio"
	"github.com/ik5/audsfx/internal/audiotest"
	"github.com/ik5/audsfx/music"
)

func ExamplePlaylist() {
	intro := music.NewTrack(audiotest.NewStream(), "intro", 30)
	theme := music.NewTrack(audiotest.NewStream(), "theme", 90)

	playlist := music.NewPlaylist(music.WithRegistry(audio.NewRegistry()))
	playlist.AddMusic(intro)
	playlist.AddMusic(theme)

	playlist.Play()
	fmt.Println(playlist.Title())
	playlist.Next()
	fmt.Println(playlist.Title())
	playlist.Next()
	fmt.Println(playlist.IsPlaying())
	// Output:
	// intro
	// theme
	// false
}

func ExamplePlayer() {
	a := audiotest.NewStream()
	b := audiotest.NewStream()

	player := music.NewPlayer(music.WithRegistry(audio.NewRegistry()))
	player.SetFading(true)
	player.SetFadeDuration(1)
	player.Add(music.NewTrack(a, "day", 120))
	player.Add(music.NewTrack(b, "night", 120))

	player.Play()
	player.Update(1)
	player.Next()
	player.Update(0.5)
	fmt.Printf("%s fading out at %.2f, %s fading in at %.2f\n",
		player.Former().Title(), a.Volume(), player.Current().Title(), b.Volume())
	// Output:
	// day fading out at 0.50, night fading in at 0.50
}
