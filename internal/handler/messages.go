package handler

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/osse101/wagerengine/internal/domain"
)

// HeaderAcceptLanguage selects the language of wager failure messages
const HeaderAcceptLanguage = "Accept-Language"

// supportedLanguages lists catalog languages; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.German,
}

var wagerMessages = map[domain.ErrorCode][]string{
	domain.CodeInvalidBet: {
		"The bet amount is outside the limits of this game.",
		"La apuesta está fuera de los límites de este juego.",
		"Der Einsatz liegt außerhalb der Grenzen dieses Spiels.",
	},
	domain.CodeVenueNotEnabled: {
		"Wagering is not available at this venue.",
		"Las apuestas no están disponibles en este local.",
		"An diesem Ort sind keine Einsätze möglich.",
	},
	domain.CodeQuotaExceeded: {
		"You have used all of today's plays at this venue.",
		"Ya usaste todas las jugadas de hoy en este local.",
		"Du hast alle heutigen Spiele an diesem Ort verbraucht.",
	},
	domain.CodeInsufficientFunds: {
		"Your balance is too low for this bet.",
		"Tu saldo es insuficiente para esta apuesta.",
		"Dein Guthaben reicht für diesen Einsatz nicht aus.",
	},
	domain.CodeTransactionFailed: {
		"The play could not be completed. Nothing was charged.",
		"No se pudo completar la jugada. No se realizó ningún cargo.",
		"Das Spiel konnte nicht abgeschlossen werden. Es wurde nichts abgebucht.",
	},
}

var (
	messageCatalog  = newMessageCatalog()
	languageMatcher = language.NewMatcher(supportedLanguages)
)

func newMessageCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(supportedLanguages[0]))
	for code, texts := range wagerMessages {
		for i, text := range texts {
			// Catalog keys are the codes; texts contain no format verbs.
			_ = b.SetString(supportedLanguages[i], string(code), text)
		}
	}
	return b
}

// localizedMessage renders the message for code in the language the request
// prefers, falling back to English.
func localizedMessage(r *http.Request, code domain.ErrorCode) string {
	_, idx := language.MatchStrings(languageMatcher, r.Header.Get(HeaderAcceptLanguage))
	p := message.NewPrinter(supportedLanguages[idx], message.Catalog(messageCatalog))
	return p.Sprintf(string(code))
}
