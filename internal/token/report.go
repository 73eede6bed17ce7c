package token

import (
	"fmt"
	"strings"

	"viewer-token/internal/config"
)

// MeetURL is LiveKit's hosted client referenced in the instructions.
const MeetURL = "https://meet.livekit.io/"

const bannerWidth = 60

// Report renders the minted token together with step-by-step connection
// instructions for the hosted meet client.
func Report(cfg *config.Config, token string) string {
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintln(&b, "LIVEKIT VIEWER TOKEN")
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "\nRoom: %s\n", cfg.RoomName)
	fmt.Fprintf(&b, "LiveKit URL: %s\n", cfg.URL)
	fmt.Fprintf(&b, "\nToken:\n%s\n", token)
	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintln(&b, "HOW TO USE:")
	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "\n1. Go to: %s\n", MeetURL)
	fmt.Fprintln(&b, "2. Click 'Custom' tab")
	fmt.Fprintf(&b, "3. Enter LiveKit URL: %s\n", cfg.URL)
	fmt.Fprintln(&b, "4. Paste the token above")
	fmt.Fprintln(&b, "5. Click 'Connect'")
	fmt.Fprintln(&b, banner)
	return b.String()
}
