package pinyin_test

import (
	"fmt"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
)

func ExampleSegment() {
	for _, word := range []string{"xīwàng", "chángān", "zhōngguórén"} {
		fmt.Println(pinyin.Segment(word))
	}
	// Output:
	// [xī wàng]
	// [cháng ān]
	// [zhōng guó rén]
}

func ExampleClassifyTone() {
	for _, s := range pinyin.Segment("míngtiānjiàn") {
		fmt.Println(s, int(pinyin.ClassifyTone(s)))
	}
	// Output:
	// míng 2
	// tiān 1
	// jiàn 4
}

func ExampleSplitDelimited() {
	fmt.Printf("%q\n", pinyin.SplitDelimited("xī\u00a0wàng"))
	// Output: ["xī" "wàng"]
}
