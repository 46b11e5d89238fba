package config

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName           = "now-core"
	ShortcutsFile     = "shortcuts.json"
	IconCacheDir      = "icons"
	LogFile           = "core.log"
	CfgFile           = "config.toml"
	AuthFile          = "auth.toml"
	APIRequestTimeout = 30 * time.Second
	APIPort           = 8715

	// GFNBaseURL is the web client all shortcuts and deep links point at.
	GFNBaseURL = "https://play.geforcenow.com/"

	// BundleIDPrefix namespaces macOS shortcut bundles by game id.
	BundleIDPrefix = "net.oaojfr.projectnow.game."

	// GameIDFlag is the process argument shortcuts use to relaunch the
	// shell with a specific game context.
	GameIDFlag = "--game-id="

	// UpdateRepo is the GitHub slug checked for new releases.
	UpdateRepo = "oaojfr/Project-NOW"

	// DiscordAppID identifies the shell to Discord for presence reporting.
	DiscordAppID = "1445408764399194283"
)

// BuildGameURL returns the web client URL for a game, or the plain client
// URL when no game id is given.
func BuildGameURL(gameID string) string {
	if gameID == "" {
		return GFNBaseURL
	}
	return GFNBaseURL + "games?game-id=" + gameID
}

// ParseGameIDFromArgs scans process arguments for the game id flag written
// into shortcuts.
func ParseGameIDFromArgs(args []string) string {
	for _, arg := range args {
		if len(arg) > len(GameIDFlag) && arg[:len(GameIDFlag)] == GameIDFlag {
			return arg[len(GameIDFlag):]
		}
	}
	return ""
}
