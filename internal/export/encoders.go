package export

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

func init() {
	Register("bmp", []string{".bmp"}, bmp.Encode)
	Register("png", []string{".png"}, png.Encode)
	Register("txt", []string{".txt"}, encodeText)
}

// Characters used by the text format.
const (
	DarkRune  = '#'
	LightRune = '.'
)

// encodeText writes one line per image row, DarkRune for pixels darker
// than mid-grey and LightRune otherwise.
func encodeText(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r := LightRune
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 128 {
				r = DarkRune
			}
			if _, err := bw.WriteRune(r); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
