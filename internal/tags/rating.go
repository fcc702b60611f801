package tags

// Star ratings are stored with a different numeric scale in every
// container. The write values below are the ones Windows Explorer and
// Windows Media Player produce; reads band around them so values from
// other taggers still resolve to the nearest star count.

// popmEmail identifies the POPM frame Windows Media Player owns.
const popmEmail = "Windows Media Player 9 Series"

var (
	popmByStars = [6]int{0, 1, 64, 128, 196, 255}
	mp4ByStars  = [6]int{0, 20, 40, 60, 80, 100}
	asfByStars  = [6]int{0, 1, 25, 50, 75, 99}
)

// clampStars bounds a star count to the 0-5 range.
func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// popmRating returns the POPM byte for a star count.
func popmRating(stars int) int {
	return popmByStars[clampStars(stars)]
}

// mp4Rating returns the 0-100 MP4 rating value for a star count.
func mp4Rating(stars int) int {
	return mp4ByStars[clampStars(stars)]
}

// asfRating returns the WM/SharedUserRating value for a star count.
func asfRating(stars int) int {
	return asfByStars[clampStars(stars)]
}

// starsFromPOPM maps a POPM rating byte to stars. Band boundaries sit
// midway between the canonical write values 0, 1, 64, 128, 196, 255.
func starsFromPOPM(v int) int {
	switch {
	case v <= 0:
		return 0
	case v < 32:
		return 1
	case v < 96:
		return 2
	case v < 162:
		return 3
	case v < 226:
		return 4
	default:
		return 5
	}
}

// starsFromMP4 maps a 0-100 rating value to stars.
func starsFromMP4(v int) int {
	switch {
	case v <= 0:
		return 0
	case v < 30:
		return 1
	case v < 50:
		return 2
	case v < 70:
		return 3
	case v < 90:
		return 4
	default:
		return 5
	}
}

// starsFromASF maps a WM/SharedUserRating value to stars. Canonical
// write values are 0, 1, 25, 50, 75, 99.
func starsFromASF(v int) int {
	switch {
	case v <= 0:
		return 0
	case v < 13:
		return 1
	case v < 38:
		return 2
	case v < 63:
		return 3
	case v < 87:
		return 4
	default:
		return 5
	}
}

// starsFromVorbis maps a FLAC RATING comment to stars. The writer
// stores the bare star digit; some taggers use a 0-100 scale instead,
// so larger values fall back to the 0-100 banding.
func starsFromVorbis(v int) int {
	if v >= 0 && v <= 5 {
		return v
	}
	return starsFromMP4(v)
}
