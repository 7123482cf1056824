package sm3_test

import (
	"fmt"

	"github.com/zeebo/sm3"
)

func ExampleNew() {
	h := sm3.New()

	h.Write([]byte("some data"))

	fmt.Printf("%x\n", h.Sum(nil))
	//output:
	// 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
}

func ExampleHasher_Reset() {
	h := sm3.New()

	h.Write([]byte("some data"))
	fmt.Printf("%x\n", h.Sum(nil))

	h.Reset()

	h.Write([]byte("some data"))
	fmt.Printf("%x\n", h.Sum(nil))
	//output:
	// 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
	// 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
}

func ExampleHasher_HexDigest() {
	h := sm3.New()

	h.WriteString("some")
	fmt.Println(h.HexDigest())

	h.WriteString(" data")
	fmt.Println(h.HexDigest())
	//output:
	// 34f70fd8dfcd93f49f6425e46630b9f7b56317b37043c59e9c60396aed24c5b2
	// 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
}

func ExampleHasher_Clone() {
	h1 := sm3.New()
	h1.WriteString("some")

	h2 := h1.Clone()
	fmt.Println("before:")
	fmt.Printf("h1: %x\n", h1.Sum(nil))
	fmt.Printf("h2: %x\n\n", h2.Sum(nil))

	h2.WriteString(" data")

	fmt.Println("h2 modified:")
	fmt.Printf("h1: %x\n", h1.Sum(nil))
	fmt.Printf("h2: %x\n\n", h2.Sum(nil))

	h1.WriteString(" data")

	fmt.Println("h1 converged:")
	fmt.Printf("h1: %x\n", h1.Sum(nil))
	fmt.Printf("h2: %x\n", h2.Sum(nil))

	//output:
	// before:
	// h1: 34f70fd8dfcd93f49f6425e46630b9f7b56317b37043c59e9c60396aed24c5b2
	// h2: 34f70fd8dfcd93f49f6425e46630b9f7b56317b37043c59e9c60396aed24c5b2
	//
	// h2 modified:
	// h1: 34f70fd8dfcd93f49f6425e46630b9f7b56317b37043c59e9c60396aed24c5b2
	// h2: 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
	//
	// h1 converged:
	// h1: 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
	// h2: 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
}

func ExampleSum256() {
	digest := sm3.Sum256([]byte("some data"))

	fmt.Printf("%x\n", digest[:])
	//output:
	// 28614bcc8f2f24f8b87d8e0b98a063367b0ddd449c11f0302ef78db088f85300
}

func ExampleHexSum256() {
	fmt.Println(sm3.HexSum256([]byte("abc")))
	//output:
	// 66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0
}
