package cli

import (
	"github.com/spf13/cobra"
)

// turnCommand maps a CLI verb onto a platform request
type turnCommand struct {
	use         string
	short       string
	requestType string
	intent      string
}

var turnCommands = []turnCommand{
	{"launch", "Open the game and hear your current card", "LaunchRequest", ""},
	{"current", "Hear your current card", "IntentRequest", "CurrentCardIntent"},
	{"next", "Move to the next card", "IntentRequest", "NextCardIntent"},
	{"previous", "Go back to the previous card", "IntentRequest", "PreviousCardIntent"},
	{"restart", "Reshuffle and start from the first card", "IntentRequest", "RestartGameIntent"},
	{"random", "Hear a random card without changing your game", "IntentRequest", "RandomCardIntent"},
	{"help", "Hear what the game is about", "IntentRequest", "AMAZON.HelpIntent"},
	{"how-to-play", "Hear how to play", "IntentRequest", "HowToPlayIntent"},
	{"threat-modelling", "Hear about threat modelling", "IntentRequest", "ThreatModellingIntent"},
	{"about", "Hear about the game", "IntentRequest", "AboutGameIntent"},
	{"yes", "Answer yes to the last question", "IntentRequest", "AMAZON.YesIntent"},
	{"no", "Answer no to the last question", "IntentRequest", "AMAZON.NoIntent"},
	{"stop", "End the session", "IntentRequest", "AMAZON.StopIntent"},
}

func newTurnCmd(tc turnCommand) *cobra.Command {
	return &cobra.Command{
		Use:   tc.use,
		Short: tc.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newOutput(cmd)

			attrs, err := cfg.LoadAttributes()
			if err != nil {
				return err
			}
			out.Trace("%s %s user=%s attributes=%v", tc.requestType, tc.intent, cfg.UserID, attrs)

			result, err := client.Turn(cfg.UserID, tc.requestType, tc.intent, attrs)
			if err != nil {
				return err
			}
			out.Trace("handler=%v end_session=%t", result.SessionAttributes["handler"], result.Response.ShouldEndSession)

			// An ended session forgets its attributes, as the platform does
			if result.Response.ShouldEndSession {
				err = cfg.ClearAttributes()
			} else {
				err = cfg.SaveAttributes(result.SessionAttributes)
			}
			if err != nil {
				return err
			}

			out.Print(result)
			return nil
		},
	}
}
