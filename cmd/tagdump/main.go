// Dev tool to dump the parsed metadata of audio files
package main

import (
	"fmt"
	"os"

	"github.com/mgirard/etch/internal/errmsg"
	"github.com/mgirard/etch/internal/tags"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tagdump FILE...")
		os.Exit(2)
	}

	failed := 0
	for _, path := range os.Args[1:] {
		t, err := tags.Read(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpTagRead, path, err))
			failed++
			continue
		}
		printTag(t)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printTag(t *tags.Tag) {
	fmt.Printf("%s (%s)\n", t.Path, tags.FormatForPath(t.Path))
	fmt.Printf("  Title:                %s\n", t.Title)
	fmt.Printf("  Subtitle:             %s\n", t.Subtitle)
	fmt.Printf("  Rating:               %s (%d)\n", t.Stars(), t.Rating)
	fmt.Printf("  Comments:             %s\n", t.Comment)
	fmt.Printf("  Contributing artists: %s\n", t.Artist)
	fmt.Printf("  Album artist:         %s\n", t.AlbumArtist)
	fmt.Printf("  Album:                %s\n", t.Album)
	fmt.Printf("  Year:                 %s\n", t.Year)
	fmt.Printf("  Track number:         %s\n", t.TrackText())
	fmt.Printf("  Genre:                %s\n", t.Genre)
	fmt.Println()
}
