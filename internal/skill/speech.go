package skill

import (
	"fmt"

	"github.com/zeroXten/alexa-threat-model-game/internal/model"
)

const (
	speechHelpInfo = "Elevation of Privilege is a card game that helps you find threats in the " +
		"software you build. I deal you one card at a time and remember where you are, so you " +
		"can come back later and carry on. Would you like to hear how to play?"

	speechHowToPlayInfo = "Draw a diagram of your system, then ask for a card. Each card describes " +
		"a threat. Look at your diagram and decide whether that threat applies. If it does, write " +
		"it down. Say next card to move on, previous card to go back, or restart game for a new " +
		"shuffle. Would you like to know more about threat modelling?"

	speechHowToPlayQuestion = "Would you like to hear how to play?"

	speechThreatModellingInfo = "Threat modelling is a way of finding security problems while you " +
		"design a system, before they become bugs. The cards follow the STRIDE categories: " +
		"spoofing, tampering, repudiation, information disclosure, denial of service and " +
		"elevation of privilege. Would you like to hear about the game itself?"

	speechThreatModellingQuestion = "Would you like to know more about threat modelling?"

	speechAboutGameInfo = "Elevation of Privilege was created by Adam Shostack at Microsoft and is " +
		"published under a Creative Commons license. Enjoy the game."

	speechAboutGameQuestion = "Would you like to hear about the game itself?"

	speechEndOfHelp = "OK. Say current card whenever you're ready to play."

	speechNoHandler = "Sorry, I wasn't expecting a yes or no just then. Say help to hear what you can do."

	speechFallback = "Sorry, I didn't catch that. Say help to hear what you can do."

	speechGoodbye = "Goodbye, and good luck finding those threats."

	speechApology = "Sorry, I'm having trouble remembering your game right now. Please try again later."
)

// cardSpeech describes a card, e.g. "Your current card is the two of spoofing. ..."
func cardSpeech(prefix string, card model.Card) string {
	return fmt.Sprintf("Your %s card is %s. %s", prefix, card.Title(), card.Description)
}

func welcomeSpeech(name string, card model.Card) string {
	return fmt.Sprintf("Welcome to Elevation of Privilege. You're playing %s. %s", name, cardSpeech("current", card))
}

func lastCardSpeech(card model.Card) string {
	return "There are no more cards. " + cardSpeech("last", card)
}

func firstCardSpeech(card model.Card) string {
	return "You're already at the first card. " + cardSpeech("first", card)
}

func restartSpeech(name string, card model.Card) string {
	return fmt.Sprintf("I've reshuffled %s. %s", name, cardSpeech("first", card))
}
