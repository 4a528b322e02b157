package main

import (
	"flag"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/tilenoise/pkg/lut"
	"github.com/OCharnyshevich/tilenoise/pkg/noise"
)

// lutget downloads a prebuilt lookup table (any source go-getter
// understands: http, git, s3, local file) and optionally checks the
// channel contract against the stock offsets before accepting it.
func main() {
	var (
		url    = flag.String("url", "", "table source URL")
		out    = flag.String("o", "./noise_lut.png", "output file path")
		verify = flag.Bool("verify", false, "check the channel contract with the stock offsets")
	)
	flag.Parse()

	if *url == "" {
		panic("table source URL required")
	}

	log.Default().Printf("start downloading table %s", *url)

	if err := get.GetFile(*out, *url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading table %s", *out)

	if *verify {
		t, err := lut.ReadPNG(*out)
		if err != nil {
			log.Default().Printf("read table: %v", err)
			os.Exit(1)
		}
		if err := lut.Verify(t, noise.DefaultParams()); err != nil {
			log.Default().Printf("table rejected: %v", err)
			os.Exit(1)
		}
		log.Default().Printf("channel contract verified")
	}
}
