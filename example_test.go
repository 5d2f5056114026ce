package pixbuf_test

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixbuf"
)

func Example() {
	buf, err := pixbuf.New(4, 4)
	if err != nil {
		panic(err)
	}
	defer buf.Destroy()

	buf.Clear(0x000000FF)
	buf.FillRect(1, 1, 2, 2, 0xFFFFFFFF)

	for y := range buf.Height() {
		var row []string
		for x := range buf.Width() {
			c, _ := buf.Pixel(x, y)
			row = append(row, fmt.Sprintf("%08X", uint32(c)))
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 000000FF 000000FF 000000FF 000000FF
	// 000000FF FFFFFFFF FFFFFFFF 000000FF
	// 000000FF FFFFFFFF FFFFFFFF 000000FF
	// 000000FF 000000FF 000000FF 000000FF
}

func ExamplePixelBuffer_DrawImage() {
	sprite, _ := pixbuf.New(2, 1)
	sprite.Pixels()[0] = pixbuf.Red
	sprite.Pixels()[1] = pixbuf.Blue

	dst, _ := pixbuf.New(2, 1)
	dst.DrawImage(sprite, 0, 0, pixbuf.FlipX)

	fmt.Println(dst.Pixels())
	// Output: [#0000FFFF #FF0000FF]
}

func ExampleNew_invalid() {
	_, err := pixbuf.New(0, 10)
	fmt.Println(err)
	fmt.Println(pixbuf.KindOf(err))
	// Output:
	// pixbuf: invalid dimensions: cannot create 0x10 buffer
	// failed to create pixel buffer due to improper dimensions
}
