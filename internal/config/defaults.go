package config

import "time"

// Default values for configuration
const (
	DefaultConfigPath = "./config.yaml"
	DefaultEnvPrefix  = "BOT"

	// LegacyTokenEnv is also accepted for the bot token.
	LegacyTokenEnv = "TELOXIDE_TOKEN"

	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultRequestTimeout     = 15 * time.Second
	DefaultPollTimeout        = time.Minute
	DefaultDropPendingUpdates = false

	DefaultHTTPEnabled = false
	DefaultHTTPAddr    = ":8080"
)

// Task names known to the scheduler.
const (
	TaskCommandsSync  = "commands_sync"
	TaskGatewayHealth = "gateway_health"
)

// DefaultTasks are scheduled unless overridden.
var DefaultTasks = map[string]TaskConfig{
	TaskCommandsSync:  {Enabled: true, Schedule: "0 0 */6 * * *"},
	TaskGatewayHealth: {Enabled: true, Schedule: "0 */5 * * * *"},
}

// DefaultMessages are the built-in user-visible strings.
var DefaultMessages = MessagesConfig{
	Welcome: "I remove tracking parameters (si) from YouTube, YouTube Music and Spotify links. Add me to a group to get started.",
	HelpBody: "How it works:\n" +
		"1. If I am an administrator of the group:\n" +
		"   - I detect messages containing YouTube, YouTube Music or Spotify links\n" +
		"   - I delete the original message\n" +
		"   - I repost it with the sender's name and the si parameter removed\n\n" +
		"2. If I am not an administrator of the group:\n" +
		"   - I detect messages containing YouTube, YouTube Music or Spotify links\n" +
		"   - I reply to the original message with buttons opening the cleaned links",
	About:           "A bot that removes the tracking parameter (si) from YouTube, YouTube Music and Spotify links.",
	TestUsage:       "Please provide a URL. Example: /test https://youtu.be/Vc-ByDGOuQE?si=qIy-ihfrRKmDAPZP",
	TestNoChange:    "There is no tracking parameter to remove.\n\nOriginal: %s",
	TestCleaned:     "Tracking parameters removed.\n\nOriginal: %s\n\nCleaned: %s",
	ReplyHeader:     "Links with tracking parameters removed:",
	ButtonLabel:     "Cleaned link #%d",
	AnonymousAuthor: "Unknown",

	CmdStart: "Start the bot",
	CmdHelp:  "Show this help",
	CmdAbout: "About this bot",
	CmdTest:  "Test si parameter removal on a URL",
}
