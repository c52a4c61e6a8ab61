// Command radial lays out, renders and replays emotion wheels from JSON
// datasets.
//
//	radial layout testdata/emotions.json
//	radial svg --theme dark --labels -o wheel.svg data.json
//	radial replay data.json gestures.json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
