package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/golang/glog"

	"viewer-token/internal/config"
	"viewer-token/internal/token"
)

func main() {
	_ = flag.Set("logtostderr", "true")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		glog.Exitf("load config: %v", err)
	}

	jwt, err := token.Mint(cfg, time.Now())
	if err != nil {
		glog.Exitf("mint token: %v", err)
	}

	fmt.Print(token.Report(cfg, jwt))
}
