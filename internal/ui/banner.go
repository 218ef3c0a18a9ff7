package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
 ___ _   _ _ _ ___ _            _   _
/ __| |_(_) | / __| |___ _  _| |_| |_
\__ \ / / | | \__ \ / -_) || |  _| ' \
|___/_\_\_|_|_|___/_\___|\_,_|\__|_||_|
 work.ua skill demand crawler
`

// ColorizeText applies a random colour fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := strings.Split(text, "")
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(startColor.Fade(0, float32(len(runes)), float32(i), endColor).Sprint(r))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
